package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		failWith(err)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Description = "Air hockey table with an opponent learning from your moves"
	app.Name = "air-hockey"
	app.Usage = "Play air hockey in your browser"

	app.Commands = []cli.Command{
		{
			Name:    "serve",
			Aliases: []string{"s"},
			Usage:   "Run the table and serve its viz",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "config", Value: "", Usage: "TOML configuration file; defaults apply to missing keys"},
				cli.StringFlag{Name: "mode", Value: "", Usage: "static, keyboard, versus or learning; overrides the configuration"},
				cli.IntFlag{Name: "tps", Value: 0, Usage: "Number of ticks per second; overrides the configuration"},
				cli.Int64Flag{Name: "seed", Value: 0, Usage: "Random seed; 0 draws one from the clock"},
				cli.IntFlag{Name: "port", Value: 8080, Usage: "Port serving the viz"},
				cli.StringFlag{Name: "host", Value: "0.0.0.0", Usage: "Interface serving the viz"},
				cli.StringFlag{Name: "network", Value: "", Usage: "Network file loaded at start"},
				cli.StringFlag{Name: "save-network", Value: "", Usage: "Destination file for the network when the server stops"},
				cli.BoolFlag{Name: "debug", Usage: "Enable JSON debug logging"},
				cli.BoolFlag{Name: "quiet", Usage: "Disable logging"},
			},
			Action: func(c *cli.Context) error {
				return serveAction(serveOptions{
					configFile:  c.String("config"),
					mode:        c.String("mode"),
					tps:         c.Int("tps"),
					seed:        c.Int64("seed"),
					addr:        c.String("host") + ":" + c.String("port"),
					networkFile: c.String("network"),
					saveNetwork: c.String("save-network"),
					isDebug:     c.Bool("debug"),
					isQuiet:     c.Bool("quiet"),
				})
			},
		},
		{
			Name:  "config",
			Usage: "Print the configuration in effect as TOML",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "config", Value: "", Usage: "TOML configuration file merged over the defaults"},
			},
			Action: func(c *cli.Context) error {
				return configAction(c.App.Writer, c.String("config"))
			},
		},
		{
			Name:  "network",
			Usage: "Operations on network files",
			Subcommands: []cli.Command{
				{
					Name:  "init",
					Usage: "Write a freshly initialized network",
					Flags: []cli.Flag{
						cli.StringFlag{Name: "out", Value: "network.json", Usage: "Destination file"},
						cli.IntFlag{Name: "hidden", Value: 30, Usage: "Number of hidden units"},
						cli.Int64Flag{Name: "seed", Value: 0, Usage: "Random seed; 0 draws one from the clock"},
					},
					Action: func(c *cli.Context) error {
						return networkInitAction(c.App.Writer, c.String("out"), c.Int("hidden"), c.Int64("seed"))
					},
				},
				{
					Name:  "inspect",
					Usage: "Validate a network file and print its topology",
					Flags: []cli.Flag{
						cli.StringFlag{Name: "in", Value: "network.json", Usage: "Network file"},
						cli.IntFlag{Name: "hidden", Value: 30, Usage: "Expected number of hidden units"},
					},
					Action: func(c *cli.Context) error {
						return networkInspectAction(c.App.Writer, c.String("in"), c.Int("hidden"))
					},
				},
			},
		},
	}

	return app
}
