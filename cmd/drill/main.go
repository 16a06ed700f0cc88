package main

import "drillcoach/cmd/drill/root"

func main() {
	root.Execute()
}
