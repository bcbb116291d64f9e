package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/wybiral/air-hockey/game/learning"
)

func networkInitAction(w io.Writer, out string, hidden int, seed int64) error {
	if hidden <= 0 {
		return errors.Errorf("hidden must be positive, got %d", hidden)
	}

	topology := learning.DefaultTopology.WithHidden(hidden)
	network := learning.NewPerceptron(topology, makeRand(seed))

	data, err := learning.MarshalNetwork(network)
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, data, 0644); err != nil {
		return errors.Wrapf(err, "Could not write network (%s)", out)
	}

	fmt.Fprintf(w, "Network %d-%d-%d written to %s\n", topology.Inputs, topology.Hidden, topology.Outputs, out)
	return nil
}

func networkInspectAction(w io.Writer, in string, hidden int) error {
	network, err := openNetwork(in, hidden)
	if err != nil {
		return err
	}

	topology := learning.DefaultTopology.WithHidden(hidden)
	if perceptron, ok := network.(*learning.Perceptron); ok {
		topology = perceptron.Topology()
	}

	fmt.Fprintf(w, "inputs:  %d\nhidden:  %d\noutputs: %d\n", topology.Inputs, topology.Hidden, topology.Outputs)
	return nil
}
