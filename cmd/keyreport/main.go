package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/clibits/getch"
)

type args struct {
	Quit string `arg:"-q,--quit" default:"q" help:"character that ends the report loop"`
	Echo bool   `arg:"--echo" help:"re-enable local echo while reporting"`
}

func (args) Description() string {
	return "keyreport prints every decoded keystroke until the quit key is pressed"
}

func main() {
	var a args
	p := arg.MustParse(&a)
	if len([]rune(a.Quit)) != 1 {
		p.Fail("--quit must be a single character")
	}
	quit := []rune(a.Quit)[0]

	g, err := getch.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "keyreport: %v\n", err)
		os.Exit(1)
	}
	defer g.Close()

	if a.Echo {
		if err := getch.EnableEcho(); err != nil {
			fmt.Fprintf(os.Stderr, "keyreport: %v\n", err)
		}
	}

	// Raw mode: \r\n for line breaks.
	fmt.Printf("press %q to exit\r\n", quit)

	for {
		key, err := g.ReadKey()
		if err != nil {
			fmt.Printf("read error: %v\r\n", err)
			return
		}
		if key.Equal(getch.Char(quit)) {
			return
		}
		fmt.Printf("%s\r\n", key)
	}
}
