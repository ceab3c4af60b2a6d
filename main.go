package main

import "github.com/iteam13337/gosweep/cmd"

func main() {
	cmd.Execute()
}
