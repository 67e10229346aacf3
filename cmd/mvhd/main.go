// Command mvhd inspects and edits the movie header of QuickTime files.
package main

import "github.com/robert-malhotra/go-mvhd/cmd/mvhd/cmd"

func main() {
	cmd.Execute()
}
