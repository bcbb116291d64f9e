package hockeyserver

import (
	"context"

	"github.com/wybiral/air-hockey/common/utils"
	"github.com/wybiral/air-hockey/game/hockey"
)

type commandResult struct {
	value interface{}
	err   error
}

// command is a mutation or a read of the game queued from another goroutine.
type command struct {
	name  string
	apply func(game *hockey.HockeyGame) (interface{}, error)
	reply chan commandResult
}

func (server *Server) execute(cmd command) {
	utils.Assert(!server.ticking, "command "+cmd.name+" executed during a tick")

	server.debugNbCommands++

	value, err := cmd.apply(server.game)
	cmd.reply <- commandResult{value: value, err: err}
}

// submit queues fn for the loop and waits for its result.
func (server *Server) submit(ctx context.Context, name string, fn func(game *hockey.HockeyGame) (interface{}, error)) (interface{}, error) {
	cmd := command{
		name:  name,
		apply: fn,
		reply: make(chan commandResult, 1),
	}

	select {
	case server.commands <- cmd:
	case <-server.done:
		return nil, ErrStopped
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-cmd.reply:
		return res.value, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (server *Server) Randomize(ctx context.Context) error {
	_, err := server.submit(ctx, "randomize", func(game *hockey.HockeyGame) (interface{}, error) {
		game.Randomize()
		return nil, nil
	})

	return err
}

// LoadNetwork reports whether the network was replaced; empty data is a no-op.
func (server *Server) LoadNetwork(ctx context.Context, data []byte) (bool, error) {
	res, err := server.submit(ctx, "load-network", func(game *hockey.HockeyGame) (interface{}, error) {
		return game.LoadNetwork(data)
	})
	if err != nil {
		return false, err
	}

	return res.(bool), nil
}

func (server *Server) SaveNetwork(ctx context.Context) ([]byte, error) {
	res, err := server.submit(ctx, "save-network", func(game *hockey.HockeyGame) (interface{}, error) {
		return game.SaveNetwork()
	})
	if err != nil {
		return nil, err
	}

	return res.([]byte), nil
}

func (server *Server) Stats(ctx context.Context) (hockey.Stats, error) {
	res, err := server.submit(ctx, "stats", func(game *hockey.HockeyGame) (interface{}, error) {
		return game.Stats(), nil
	})
	if err != nil {
		return hockey.Stats{}, err
	}

	return res.(hockey.Stats), nil
}
