package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
	"golang.org/x/sync/errgroup"

	"github.com/wybiral/air-hockey/common/config"
	"github.com/wybiral/air-hockey/common/input"
	"github.com/wybiral/air-hockey/common/utils"
	"github.com/wybiral/air-hockey/game/hockey"
	"github.com/wybiral/air-hockey/game/learning"
	"github.com/wybiral/air-hockey/hockeyserver"
	"github.com/wybiral/air-hockey/vizserver"
	viztypes "github.com/wybiral/air-hockey/vizserver/types"
)

type serveOptions struct {
	configFile  string
	mode        string
	tps         int
	seed        int64
	addr        string
	networkFile string
	saveNetwork string
	isDebug     bool
	isQuiet     bool
}

func resolveConfig(options serveOptions) (config.Config, error) {
	conf, err := config.LoadOrDefault(options.configFile)
	if err != nil {
		return conf, err
	}

	if options.mode != "" {
		conf.Mode = options.mode
	}

	if options.tps > 0 {
		conf.Tps = options.tps
	}

	if options.seed != 0 {
		conf.Seed = options.seed
	}

	return conf, conf.Validate()
}

func makeRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}

func serveAction(options serveOptions) error {
	switch {
	case options.isQuiet:
		utils.LogFn = utils.SilentLog
	case !options.isDebug:
		utils.LogFn = utils.PlainLog
	}

	conf, err := resolveConfig(options)
	if err != nil {
		return err
	}

	keys := input.NewState()
	rng := makeRand(conf.Seed)

	game, err := hockey.NewHockeyGame(conf, keys, nil, rng)
	if err != nil {
		return errors.Wrap(err, "Could not create the game")
	}

	if options.networkFile != "" {
		data, err := os.ReadFile(options.networkFile)
		if err != nil {
			return errors.Wrapf(err, "Could not read network (%s)", options.networkFile)
		}

		if _, err := game.LoadNetwork(data); err != nil {
			return errors.Wrapf(err, "Could not load network (%s)", options.networkFile)
		}
	}

	server := hockeyserver.NewServer(game, conf.Tps)

	if options.saveNetwork != "" {
		destination := options.saveNetwork
		server.AddTearDownCall(func() error {
			data, err := game.SaveNetwork()
			if err != nil {
				return err
			}

			utils.Debugf("serve", "Saving network to %s", destination)
			return os.WriteFile(destination, data, 0644)
		})
	}

	viz := vizserver.NewVizService(
		options.addr,
		server,
		keys,
		viztypes.MakeVizInitMessageData(conf),
		os.Stdout,
	)
	viz.RegisterHealthCheck("loop", server.HealthCheck)

	printBanner(conf, options.addr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(gctx)
	})

	g.Go(func() error {
		return viz.ListenAndServe(gctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

func printBanner(conf config.Config, addr string) {
	fmt.Println(chalk.Bold.TextStyle("air-hockey") + " " + chalk.Cyan.Color(conf.Mode) + " mode")
	fmt.Printf("  %d ticks per second, table %vx%v\n", conf.Tps, conf.Table.Width, conf.Table.Height)
	fmt.Println("  serving on " + chalk.Green.Color("http://"+addr))
}

func configAction(w io.Writer, configFile string) error {
	conf, err := config.LoadOrDefault(configFile)
	if err != nil {
		return err
	}

	return conf.Write(w)
}

func openNetwork(filename string, hidden int) (learning.Network, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read network (%s)", filename)
	}

	network, err := learning.UnmarshalNetwork(data, learning.DefaultTopology.WithHidden(hidden))
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid network (%s)", filename)
	}

	return network, nil
}
