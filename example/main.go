package main

import (
	"fmt"

	"github.com/mgnsk/forwardlist"
)

func main() {
	l := forwardlist.New("beta", "gamma")

	// Head mutations go through the before-begin position.
	l.InsertAfter(l.BeforeBegin(), "alpha")

	for v := range l.All() {
		fmt.Println(v)
	}

	fmt.Println(l.Len(), "elements")
}
