package main

import "github.com/Zzz-puppy/working-calendar/cmd"

func main() {
	cmd.Execute()
}
