package main

import (
	"fmt"
	"io"

	model "wordrank/internal/model/wordfreq"
	"wordrank/internal/service/wordfreq"
)

var demoLogs = []string{
	"Error: Disk full",
	"Warning: Memory low",
	"error: network down",
	"Error: Disk full",
}

// RunDemo ranks a fixed set of log lines and prints
// [("error", 3), ("disk", 2)]
func RunDemo(service *wordfreq.WordFreqService, w io.Writer) {
	fmt.Fprintln(w, model.Format(service.TopWords(demoLogs, 2)))
}
