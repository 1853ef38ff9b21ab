package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nmea0183/internal/app"
	"nmea0183/internal/nmea"
	"nmea0183/internal/receiver"
	"nmea0183/internal/transport"
)

// flags holds command line values; only flags the user set override the file
type flags struct {
	configPath string
	source     string
	device     string
	baud       int
	path       string
	address    string
	captureDir string
	capture    bool
	utc        bool
	verbose    bool
	version    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "nmea0183",
		Short: "NMEA-0183 sentence decoder",
		Long: `NMEA-0183 sentence decoder for GNSS receivers.

Reads a serial port, a recorded file, a TCP feed or stdin, frames the byte
stream into sentences, verifies checksums and decodes GGA, GSA, GST, GSV,
HDT, RMC and VTG. Decoded sentences are printed one per line and can be
recorded to daily rotated capture files.

Example usage:
  nmea0183 --device /dev/ttyUSB0 --baud 4800
  nmea0183 --source file --path track.nmea
  nmea0183 --config nmea0183.yaml --capture`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.version {
				app.WriteVersion(cmd.OutOrStdout())
				return nil
			}

			config, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			return app.NewApplication(config).Start()
		},
	}

	addRootFlags(rootCmd, &f)
	rootCmd.AddCommand(newDecodeCmd(), newEncodeCmd(), newChecksumCmd(), newPortsCmd())
	return rootCmd
}

func addRootFlags(cmd *cobra.Command, f *flags) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVar(&f.source, "source", app.DefaultSource, "Source kind: serial, file, tcp or stdin")
	cmd.Flags().StringVarP(&f.device, "device", "d", app.DefaultDevice, "Serial device")
	cmd.Flags().IntVarP(&f.baud, "baud", "b", app.DefaultBaudRate, "Serial baud rate")
	cmd.Flags().StringVarP(&f.path, "path", "p", "", "Capture file to replay")
	cmd.Flags().StringVarP(&f.address, "address", "a", "", "TCP address (host:port)")
	cmd.Flags().StringVarP(&f.captureDir, "capture-dir", "l", app.DefaultCaptureDir, "Capture directory")
	cmd.Flags().BoolVar(&f.capture, "capture", false, "Record decoded sentences to daily files")
	cmd.Flags().BoolVarP(&f.utc, "utc", "u", true, "Use UTC for capture rotation")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Verbose logging")
	cmd.Flags().BoolVar(&f.version, "version", false, "Show version information")
}

// resolveConfig loads the configuration file, if any, and applies the flags
// the user set explicitly
func resolveConfig(cmd *cobra.Command, f flags) (app.Config, error) {
	config := app.DefaultConfig()
	if f.configPath != "" {
		var err error
		if config, err = app.LoadConfig(f.configPath); err != nil {
			return app.Config{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("source") {
		config.Source.Kind = strings.ToLower(f.source)
	}
	if changed("device") {
		config.Source.Device = f.device
	}
	if changed("baud") {
		config.Source.Baud = f.baud
	}
	if changed("path") {
		config.Source.Path = f.path
		if !changed("source") {
			config.Source.Kind = string(transport.KindFile)
		}
	}
	if changed("address") {
		config.Source.Address = f.address
		if !changed("source") {
			config.Source.Kind = string(transport.KindTCP)
		}
	}
	if changed("capture-dir") {
		config.Capture.Dir = f.captureDir
	}
	if changed("capture") {
		config.Capture.Enable = f.capture
	}
	if changed("utc") {
		config.Capture.UTC = f.utc
	}
	config.Verbose = f.verbose

	if err := config.Validate(); err != nil {
		return app.Config{}, err
	}
	return config, nil
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [sentence...]",
		Short: "Decode sentences given as arguments or read from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			r := receiver.New(decodeHandler{
				SentenceHandler: func(s nmea.Sentence) { fmt.Fprintln(out, app.Describe(s)) },
				out:             out,
			})

			if len(args) == 0 {
				_, err := io.Copy(r, cmd.InOrStdin())
				return err
			}
			for _, arg := range args {
				r.Receive([]byte(terminate(arg)))
			}
			return nil
		},
	}
}

// decodeHandler prints decoded sentences and reports rejected frames
type decodeHandler struct {
	receiver.SentenceHandler
	out io.Writer
}

func (h decodeHandler) OnDropped(raw []byte, reason string) {
	fmt.Fprintf(h.out, "dropped %q: %s\n", raw, reason)
}

func (h decodeHandler) OnChecksumFailed(raw []byte, expected, actual uint8) {
	fmt.Fprintf(h.out, "checksum mismatch %q: computed %s, stated %s\n",
		raw, nmea.FormatChecksum(expected), nmea.FormatChecksum(actual))
}

func (h decodeHandler) OnIgnored(raw []byte) {
	fmt.Fprintf(h.out, "ignored %q\n", raw)
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode payload...",
		Short: "Frame payloads with a start marker, checksum and terminator",
		Example: `  nmea0183 encode 'GPHDT,75.5664,T'
  $GPHDT,75.5664,T*36`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, payload := range args {
				payload = strings.TrimPrefix(payload, "$")
				fmt.Fprintln(w, strings.TrimRight(nmea.Frame(payload), "\r\n"))
			}
			return w.Flush()
		},
	}
}

func newChecksumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checksum sentence...",
		Short: "Verify the checksum of complete sentences",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, arg := range args {
				res := receiver.Dispatch([]byte(terminate(arg)))
				switch res.Outcome {
				case receiver.ChecksumFailed:
					failed++
					fmt.Fprintf(out, "%s: mismatch, computed %s, stated %s\n",
						arg, nmea.FormatChecksum(res.Expected), nmea.FormatChecksum(res.Actual))
				case receiver.Dropped:
					failed++
					fmt.Fprintf(out, "%s: malformed, %s\n", arg, res.Reason)
				default:
					fmt.Fprintf(out, "%s: ok\n", arg)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d sentences failed verification", failed, len(args))
			}
			return nil
		},
	}
}

func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List serial ports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ports, err := transport.Ports()
			if err != nil {
				return err
			}
			if len(ports) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no serial ports found")
				return nil
			}
			for _, port := range ports {
				fmt.Fprintln(cmd.OutOrStdout(), port)
			}
			return nil
		},
	}
}

// terminate appends the CR LF a shell argument usually lacks
func terminate(sentence string) string {
	return strings.TrimRight(sentence, "\r\n") + "\r\n"
}
