package main

import (
	"fmt"
	"os"

	"github.com/ttacon/chalk"
)

func warnWith(err error) {
	fmt.Println(chalk.Yellow.Color("=== warning: " + err.Error()))
}

func failWith(err error) {
	fmt.Println("")
	fmt.Println(chalk.Red.Color("=== an error occurred"))
	fmt.Println("")
	fmt.Printf("%+v\n", err)

	os.Exit(1)
}
