// Command simconnect-probe opens a SimConnect connection, asks the simulator
// for a few system states and logs what comes back.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/flightlink/simconnect-go/pkg/simconnect"
	"github.com/flightlink/simconnect-go/pkg/simconnect/logging"
)

func main() {
	configPath := flag.String("config", "", "path to the probe configuration file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "simconnect-probe: %v\n", err)
		os.Exit(2)
	}

	log := newLogger(cfg.Logging)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("probe failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *Config, log *zap.Logger) error {
	log.Info("starting",
		zap.String("version", simconnect.WrapperVersion()),
		zap.String("sdk", simconnect.SDKHeader))

	conn, err := simconnect.New(simconnect.Config{
		DLLPath:     cfg.Client.DLLPath,
		SDKRoot:     cfg.Client.SDKRoot,
		ConfigIndex: cfg.Client.ConfigIndex,
		Logger:      logging.NewZap(log.Named("simconnect")),
	})
	if err != nil {
		if errors.Is(err, simconnect.ErrNotBuilt) {
			log.Warn("SimConnect is unavailable on this platform", zap.Error(err))
			return nil
		}
		return err
	}

	if err := conn.Open(cfg.Client.Name); err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Warn("close failed", zap.Error(cerr))
		}
	}()

	pending := map[simconnect.RequestID]string{}
	for i, state := range cfg.Probe.States {
		req := simconnect.RequestID(i + 1)
		if err := conn.RequestSystemState(req, state); err != nil {
			return fmt.Errorf("request %s: %w", state, err)
		}
		pending[req] = state
	}

	return drain(ctx, conn, cfg.Probe, pending, log)
}

// drain polls the receive queue until every requested state has answered,
// the simulator quits, or the probe runs out of time or messages.
func drain(ctx context.Context, conn *simconnect.Conn, cfg ProbeConfig, pending map[simconnect.RequestID]string, log *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	ticker := time.NewTicker(cfg.Poll)
	defer ticker.Stop()

	for received := 0; received < cfg.MaxMessages && len(pending) > 0; {
		msg, err := conn.GetNextDispatch()
		var rerr *simconnect.ResultError
		switch {
		case errors.As(err, &rerr) && rerr.Code == simconnect.E_FAIL:
			select {
			case <-ctx.Done():
				log.Warn("gave up waiting", zap.Int("unanswered", len(pending)), zap.Error(ctx.Err()))
				return nil
			case <-ticker.C:
			}
			continue
		case err != nil:
			return fmt.Errorf("dispatch: %w", err)
		}

		received++
		if done := report(msg, pending, log); done {
			return nil
		}
	}
	return nil
}

// report logs one message and reports whether the simulator has quit.
func report(msg *simconnect.Message, pending map[simconnect.RequestID]string, log *zap.Logger) bool {
	switch msg.ID {
	case simconnect.RecvIDOpen:
		open := simconnect.Decode[simconnect.RecvOpen](msg)
		log.Info("connected",
			zap.String("application", simconnect.BytesToString(open.SzApplicationName[:])),
			zap.Uint32("major", open.DwApplicationVersionMajor),
			zap.Uint32("minor", open.DwApplicationVersionMinor))
	case simconnect.RecvIDSystemState:
		st := simconnect.Decode[simconnect.RecvSystemState](msg)
		req := simconnect.RequestID(st.DwRequestID)
		log.Info("system state",
			zap.String("state", pending[req]),
			zap.Uint32("integer", st.DwInteger),
			zap.Float32("float", st.FFloat),
			zap.String("string", simconnect.BytesToString(st.SzString[:])))
		delete(pending, req)
	case simconnect.RecvIDException:
		ex := simconnect.Decode[simconnect.RecvException](msg)
		log.Warn("exception",
			zap.Stringer("exception", simconnect.Exception(ex.DwException)),
			zap.Uint32("sendID", ex.DwSendID),
			zap.Uint32("index", ex.DwIndex))
	case simconnect.RecvIDQuit:
		log.Info("simulator quit")
		return true
	default:
		log.Debug("message", zap.Stringer("id", msg.ID), zap.Int("size", len(msg.Data)))
	}
	return false
}
