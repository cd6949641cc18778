package main

import "github.com/Justype/sge2slurm/cmd"

func main() {
	cmd.Execute()
}
