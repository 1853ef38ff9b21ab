package receiver

import (
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"nmea0183/internal/nmea"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.DebugLevel)
	return logger
}

func newMockReceiver(t *testing.T, opts ...Option) (*Receiver, *MockHandler) {
	ctrl := gomock.NewController(t)
	handler := NewMockHandler(ctrl)
	opts = append([]Option{WithLogger(newTestLogger())}, opts...)
	return New(handler, opts...), handler
}

func TestReceiver_ResynchronizesOnStartMarker(t *testing.T) {
	r, handler := newMockReceiver(t)

	handler.EXPECT().OnVTG(gomock.Any()).Do(func(s *nmea.VTG) {
		assert.Equal(t, "GPVTG", s.ID())
		assert.InDelta(t, 172.516, s.TrueTrack, 1e-9)
		require.NotNil(t, s.Mode)
		assert.Equal(t, "D", *s.Mode)
	})

	r.Receive([]byte("$GPGGA,garbage" + vtgFrame))

	stats := r.Stats()
	assert.EqualValues(t, 1, stats.Frames)
	assert.EqualValues(t, 1, stats.Decoded)
	assert.EqualValues(t, 1, stats.ByKind[nmea.KindVTG])
}

func TestReceiver_ByteAtATime(t *testing.T) {
	r, handler := newMockReceiver(t)

	handler.EXPECT().OnHDT(gomock.Any()).Do(func(s *nmea.HDT) {
		assert.InDelta(t, 75.5664, s.HeadingTrue, 1e-9)
		assert.Equal(t, hdtFrame, nmea.Encode(s))
	})

	for i := 0; i < len(hdtFrame); i++ {
		r.ReceiveByte(hdtFrame[i])
	}
}

func TestReceiver_TalkerIndependentDispatch(t *testing.T) {
	r, handler := newMockReceiver(t)

	var talkers []string
	handler.EXPECT().OnGST(gomock.Any()).Times(2).Do(func(s *nmea.GST) {
		talkers = append(talkers, s.Talker())
	})

	r.Receive([]byte(gstFrame + gnGSTFrame))
	assert.Equal(t, []string{"GP", "GN"}, talkers)
}

func TestReceiver_RoutesEveryKind(t *testing.T) {
	r, handler := newMockReceiver(t)

	frames := []string{
		ggaFrame,
		"$GPGSA,A,3,10,07,05,02,29,04,08,13,,,,,1.72,1.03,1.38*0A\r\n",
		gstFrame,
		"$GPGSV,3,3,11,29,09,301,24,16,09,020,,36,,,*76\r\n",
		hdtFrame,
		"$GPRMC,092750.000,A,5321.6802,N,00630.3372,W,0.02,31.66,280511,,,A*43\r\n",
		vtgFrame,
	}

	gomock.InOrder(
		handler.EXPECT().OnGGA(gomock.Any()),
		handler.EXPECT().OnGSA(gomock.Any()),
		handler.EXPECT().OnGST(gomock.Any()),
		handler.EXPECT().OnGSV(gomock.Any()),
		handler.EXPECT().OnHDT(gomock.Any()),
		handler.EXPECT().OnRMC(gomock.Any()),
		handler.EXPECT().OnVTG(gomock.Any()),
	)

	_, err := io.Copy(r, strings.NewReader(strings.Join(frames, "")))
	require.NoError(t, err)

	stats := r.Stats()
	assert.EqualValues(t, len(frames), stats.Decoded)
	for _, kind := range nmea.Kinds() {
		assert.EqualValues(t, 1, stats.ByKind[kind], kind)
	}
}

func TestReceiver_RejectedFrames(t *testing.T) {
	r, handler := newMockReceiver(t)

	badChecksum := "$GPHDT,75.5664,T*37\r\n"
	noCR := "$GPHDT,75.5664,T*36\n"
	unsupported := nmea.Frame("GPTXT,01,01,02,hello")
	badField := nmea.Frame("GPHDT,abc,T")

	gomock.InOrder(
		handler.EXPECT().OnChecksumFailed([]byte(badChecksum), uint8(0x36), uint8(0x37)),
		handler.EXPECT().OnDropped([]byte(noCR), ReasonNoCR+"; "+ReasonNoChecksumMarker),
		handler.EXPECT().OnIgnored([]byte(unsupported)),
		handler.EXPECT().OnIgnored([]byte(badField)),
	)

	r.Receive([]byte(badChecksum + noCR + unsupported + badField))

	stats := r.Stats()
	assert.EqualValues(t, 4, stats.Frames)
	assert.Zero(t, stats.Decoded)
	assert.EqualValues(t, 1, stats.ChecksumFailed)
	assert.EqualValues(t, 1, stats.Dropped)
	assert.EqualValues(t, 2, stats.Ignored)
}

func TestReceiver_OverflowIsSilent(t *testing.T) {
	r, handler := newMockReceiver(t, WithCapacity(32))

	handler.EXPECT().OnHDT(gomock.Any())

	r.Receive([]byte("$GPGGA," + strings.Repeat("9", 64) + "\r\n"))
	r.Receive([]byte(hdtFrame))

	stats := r.Stats()
	assert.EqualValues(t, 1, stats.Overflows)
	assert.EqualValues(t, 1, stats.Frames)
}

func TestReceiver_Reset(t *testing.T) {
	r, _ := newMockReceiver(t)

	r.Receive([]byte(hdtFrame[:10]))
	r.Reset()
	r.Receive([]byte(hdtFrame[10:]))

	assert.Zero(t, r.Stats().Frames)
}

func TestReceiver_StatsSnapshot(t *testing.T) {
	r := New(nil, WithLogger(newTestLogger()))
	r.Receive([]byte(hdtFrame))

	snapshot := r.Stats()
	snapshot.ByKind[nmea.KindHDT] = 100

	assert.EqualValues(t, 1, r.Stats().ByKind[nmea.KindHDT])
}

func TestSentenceHandler(t *testing.T) {
	var ids []string
	r := New(SentenceHandler(func(s nmea.Sentence) {
		ids = append(ids, s.ID())
	}))

	r.Receive([]byte(ggaFrame + "$GPHDT,75.5664,T*00\r\n" + gnGSTFrame + vtgFrame))
	assert.Equal(t, []string{"GPGGA", "GNGST", "GPVTG"}, ids)
}

func TestNopHandler_Embedding(t *testing.T) {
	var headings []float64
	h := &headingCollector{headings: &headings}

	r := New(h)
	r.Receive([]byte(ggaFrame + hdtFrame + hdtFrame))
	assert.Equal(t, []float64{75.5664, 75.5664}, headings)
}

type headingCollector struct {
	NopHandler
	headings *[]float64
}

func (h *headingCollector) OnHDT(s *nmea.HDT) {
	*h.headings = append(*h.headings, s.HeadingTrue)
}
