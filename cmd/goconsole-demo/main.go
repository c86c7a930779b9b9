// Command goconsole-demo runs the console engine against a real serial
// device or, by default, an interactive stdin/stdout bridge over the
// loopback transport.
//
// Run without hardware:
//
//	go run ./cmd/goconsole-demo
//
// Type the password (default "1234"), then commands; "help" lists them.
//
// Against a device:
//
//	go run ./cmd/goconsole-demo -device /dev/ttyUSB0 -baud 115200
//
// With -metrics-addr, Prometheus metrics are served on /metrics.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goConsole "github.com/MrEthical07/goConsole"
	"github.com/MrEthical07/goConsole/command"
	"github.com/MrEthical07/goConsole/metrics/export/prometheus"
	"github.com/MrEthical07/goConsole/transport/loopback"
	"github.com/MrEthical07/goConsole/transport/serialport"
)

const demoVersion = "1.0.0"

func main() {
	var (
		device      = flag.String("device", "", "serial device path; empty runs the stdin/stdout loopback bridge")
		baud        = flag.Int("baud", 115200, "serial baud rate")
		password    = flag.String("password", "1234", "console password")
		metricsAddr = flag.String("metrics-addr", "", "address for the Prometheus /metrics endpoint; empty disables it")
		auditLog    = flag.Bool("audit", false, "write audit events as JSON lines to stderr")
	)
	flag.Parse()

	cfg := goConsole.DefaultConfig()
	cfg.Auth.Secret = *password

	ctx := goConsole.WithPortLabel(context.Background(), portLabel(*device))

	builder := goConsole.New().
		WithConfig(cfg).
		WithContext(ctx).
		WithMetricsEnabled(true).
		WithLatencyHistograms(true).
		WithCommands(
			command.Definition{
				Name: "hello",
				Help: "hello - prints a greeting \r\n",
				Handler: func(_ string, out []byte) (int, bool) {
					return command.Fill(out, "Hello world \r\n"), false
				},
			},
			command.Definition{
				Name: "version",
				Help: "version - prints the console version \r\n",
				Handler: func(_ string, out []byte) (int, bool) {
					return command.Fill(out, "Console version "+demoVersion+" \r\n"), false
				},
			},
		)

	if *auditLog {
		builder.WithAuditSink(goConsole.NewJSONWriterSink(os.Stderr))
	}

	var lb *loopback.Loopback
	if *device == "" {
		lb = loopback.New(64)
		builder.WithTransport(lb)
	} else {
		port, err := serialport.Open(serialport.Config{
			Name: *device,
			Baud: *baud,
		})
		if err != nil {
			log.Fatal("serial open:", err)
		}
		builder.WithTransport(port)
	}

	console, err := builder.Build()
	if err != nil {
		log.Fatal("console build:", err)
	}
	defer console.Close()

	if *metricsAddr != "" {
		exporter := prometheus.NewPrometheusExporter(console)
		mux := http.NewServeMux()
		mux.Handle("/metrics", exporter.Handler())
		go func() {
			log.Fatal(http.ListenAndServe(*metricsAddr, mux))
		}()
		fmt.Println("metrics on", *metricsAddr)
	}

	if lb != nil {
		runBridge(lb)
		return
	}

	fmt.Println("console attached to", *device)
	waitForSignal()
}

// runBridge connects the loopback transport to the local terminal: stdin
// lines become received bytes (newline mapped to the CR terminator), and
// completed writes are echoed to stdout.
func runBridge(lb *loopback.Loopback) {
	go func() {
		for {
			p, ok := lb.NextWrite(time.Hour)
			if !ok {
				continue
			}
			fmt.Print(string(p))
			if !hasLineBreak(p) {
				fmt.Println()
			}
		}
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		lb.FeedString(scanner.Text())
		lb.FeedByte('\r')
	}
}

func hasLineBreak(p []byte) bool {
	for _, b := range p {
		if b == '\n' {
			return true
		}
	}
	return false
}

func portLabel(device string) string {
	if device == "" {
		return "loopback"
	}
	return device
}

func waitForSignal() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	fmt.Println("shutting down")
}
