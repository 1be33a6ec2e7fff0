package getch_test

import (
	"fmt"

	"github.com/clibits/getch"
)

// Read keys until q is pressed, restoring the terminal on every exit
// path via the deferred Close.
func Example() {
	g, err := getch.New()
	if err != nil {
		fmt.Println(err)
		return
	}
	defer g.Close()

	fmt.Print("press `q` to exit\r\n")

	for {
		key, err := g.ReadKey()
		if err != nil {
			fmt.Printf("%v\r\n", err)
			return
		}
		if key.Equal(getch.Char('q')) {
			return
		}
		fmt.Printf("%s\r\n", key)
	}
}
