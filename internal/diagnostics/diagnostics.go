// Package diagnostics adds CPU profiling, execution tracing and a pprof HTTP
// server to command line actions.
package diagnostics

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/urfave/cli/v2"
)

var (
	PortFlag = cli.IntFlag{
		Name:  "diagnostic-port",
		Usage: "enable hosting of a realtime pprof server by providing a port",
		Value: 0,
	}
	CpuProfileFlag = cli.StringFlag{
		Name:  "cpuprofile",
		Usage: "sets the target file for storing CPU profiles to, disabled if empty",
		Value: "",
	}
	TraceFlag = cli.StringFlag{
		Name:  "tracefile",
		Usage: "sets the target file for traces to, disabled if empty",
		Value: "",
	}
)

// Flags returns the flags read by Wrap, for registration on an app or command.
func Flags() []cli.Flag {
	return []cli.Flag{&PortFlag, &CpuProfileFlag, &TraceFlag}
}

// Wrap returns an action that starts the diagnostics requested through
// Flags, runs action, and stops the profiler and tracer once it returns.
func Wrap(action cli.ActionFunc) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		startServer(ctx.Int(PortFlag.Name))

		if name := strings.TrimSpace(ctx.String(CpuProfileFlag.Name)); name != "" {
			f, err := startCpuProfiler(name)
			if err != nil {
				return err
			}
			defer func() {
				pprof.StopCPUProfile()
				f.Close()
			}()
		}

		if name := strings.TrimSpace(ctx.String(TraceFlag.Name)); name != "" {
			f, err := startTracer(name)
			if err != nil {
				return err
			}
			defer func() {
				trace.Stop()
				f.Close()
			}()
		}

		return action(ctx)
	}
}

func startServer(port int) {
	if port <= 0 || port >= (1<<16) {
		return
	}
	log.Printf("Starting diagnostic server at http://localhost:%d/debug/pprof", port)
	go func() {
		log.Println(http.ListenAndServe(fmt.Sprintf("localhost:%d", port), nil))
	}()
	runtime.SetBlockProfileRate(1)
	runtime.SetMutexProfileFraction(1)
}

func startCpuProfiler(filename string) (*os.File, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("could not start CPU profile: %w", err)
	}
	return f, nil
}

func startTracer(filename string) (*os.File, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}
	if err := trace.Start(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to start trace: %w", err)
	}
	return f, nil
}
