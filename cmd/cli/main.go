package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/limaJavier/giftexchange/pkg/exchange"
	"github.com/samber/lo"
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the roster file (participants and history)")
	configPathPtr := flag.String("config", "", "Path to a YAML config file; if empty, defaults are used (3 to 50 participants, precheck enabled)")
	historyLimitPtr := flag.Int("history-limit", 0, "Number of past exchanges per participant to avoid, where 0 (the default) ignores history")
	participationPtr := flag.Bool("participation", false, "Count past exchanges a participant did not join towards their history limit")
	restrictTeamPtr := flag.Bool("restrict-team", false, "Forbid participants of the same team from giving to each other")
	seedPtr := flag.Int64("seed", 0, "Seed for the random source; if 0, the config's seed (or the clock) is used")
	verbosePtr := flag.Bool("verbose", false, "Trace the search on the Standard Error")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if filePath == "" {
		log.Fatal("a roster file must be specified")
	} else if *historyLimitPtr < 0 {
		log.Fatalf("history-limit must not be negative: %v", *historyLimitPtr)
	}

	// Extract config
	config := exchange.DefaultConfig()
	if *configPathPtr != "" {
		var err error
		config, err = exchange.ConfigFromYaml(*configPathPtr)
		if err != nil {
			log.Fatalf("cannot parse config file: %v", err)
		}
	}
	if *seedPtr != 0 {
		config.Seed = *seedPtr
	}
	if *verbosePtr {
		config.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Extract input
	input, err := exchange.InputFromJson(filePath, exchange.RosterOptions{
		HistoryLimit:          *historyLimitPtr,
		ParticipationRequired: *participationPtr,
		RestrictTeams:         *restrictTeamPtr,
	})
	if err != nil {
		log.Fatalf("cannot parse roster file: %v", err)
	}

	// Build exchange
	exchanger := exchange.NewExchanger[exchange.Member, string](config)
	result, err := exchanger.Assign(context.Background(), input, nil)

	if errors.Is(err, exchange.ErrNoAssignment) {
		fmt.Println("No assignment satisfies the history and restrictions")
		os.Exit(20)
	} else if err != nil {
		log.Fatalf("an error occurred during the exchange: %v", err)
	}

	// Verify exchange correctness
	if !exchanger.Verify(result, input) {
		os.Exit(15)
	}

	// Build output from result, ordered as in the roster
	names := lo.SliceToMap(input.Participants, func(member exchange.Member) (string, string) {
		return member.Id, member.Name
	})
	output := lo.Map(input.Participants, func(giver exchange.Member, _ int) map[string]string {
		receiver := result[giver.Id]
		return map[string]string{
			"giver":        giver.Id,
			"giverName":    giver.Name,
			"receiver":     receiver,
			"receiverName": names[receiver],
		}
	})

	// Marshal output into json
	outputJson, err := json.Marshal(output)
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		fmt.Println(string(outputJson))
	} else {
		err := os.WriteFile(outFile, outputJson, 0666)
		if err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}

	os.Exit(10)
}
