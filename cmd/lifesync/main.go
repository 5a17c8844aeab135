package main

import "github.com/comitanigiacomo/lifesync-engine/cmd/lifesync/root"

func main() {
	root.Execute()
}
