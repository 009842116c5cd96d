package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/limaJavier/giftexchange/pkg/exchange"

	"github.com/samber/lo"
)

const (
	timeout     = 30 * time.Second
	repetitions = 5
)

type ResultType int

const (
	solved ResultType = iota
	unsatisfiable
	timedOut
)

var resultTypes = map[ResultType]string{
	solved:        "solved",
	unsatisfiable: "unsatisfiable",
	timedOut:      "timeout",
}

type Scenario struct {
	Participants int
	Teams        int // 0 disables the team restriction
	HistoryLimit int
	Weighted     bool
	Precheck     bool
}

type BenchmarkResult struct {
	Scenario Scenario
	Seed     int64
	Duration int64
	Result   ResultType
}

func main() {
	scenarios := getScenarios()
	results := make([]BenchmarkResult, 0, len(scenarios)*repetitions)

	for _, scenario := range scenarios {
		for seed := range int64(repetitions) {
			fmt.Printf("Benchmarking %v participants, %v teams, history limit %v, weighted %v, precheck %v (seed %v)\n", scenario.Participants, scenario.Teams, scenario.HistoryLimit, scenario.Weighted, scenario.Precheck, seed)

			duration, result := measure(scenario, seed)

			results = append(results, BenchmarkResult{
				Scenario: scenario,
				Seed:     seed,
				Duration: duration,
				Result:   result,
			})
		}
	}

	toCsv(results)
}

func getScenarios() []Scenario {
	scenarios := make([]Scenario, 0)
	for _, participants := range []int{10, 50, 200, 1000, 3000} {
		for _, teams := range []int{0, 2, 5} {
			for _, historyLimit := range []int{0, 3} {
				for _, weighted := range []bool{false, true} {
					scenarios = append(scenarios, Scenario{
						Participants: participants,
						Teams:        teams,
						HistoryLimit: historyLimit,
						Weighted:     weighted,
						Precheck:     participants <= 1000,
					})
				}
			}
		}
	}
	return scenarios
}

// buildRoster generates members spread over the scenario's teams, plus HistoryLimit past exchanges
// each shaped as a single cycle over all the members
func buildRoster(scenario Scenario, rng *rand.Rand) exchange.RawRoster {
	members := lo.Times(scenario.Participants, func(i int) exchange.Member {
		member := exchange.Member{Id: fmt.Sprint(i), Name: fmt.Sprintf("member-%d", i)}
		if scenario.Teams > 0 {
			member.Team = fmt.Sprint(i % scenario.Teams)
		}
		if scenario.Weighted {
			member.Weights = map[string]float64{fmt.Sprint(rng.IntN(scenario.Participants)): 1 + rng.Float64()*9}
		}
		return member
	})

	history := lo.Times(scenario.HistoryLimit, func(_ int) map[string]string {
		order := rng.Perm(scenario.Participants)
		return lo.SliceToMap(lo.Range(scenario.Participants), func(i int) (string, string) {
			return members[order[i]].Id, members[order[(i+1)%scenario.Participants]].Id
		})
	})

	return exchange.RawRoster{Participants: members, History: history}
}

func measure(scenario Scenario, seed int64) (duration int64, result ResultType) {
	rng := exchange.NewSeededRand(seed)
	input := exchange.ProcessRawRoster(buildRoster(scenario, rng), exchange.RosterOptions{
		HistoryLimit:  scenario.HistoryLimit,
		RestrictTeams: scenario.Teams > 0,
	})

	config := exchange.DefaultConfig()
	config.MaxParticipants = scenario.Participants
	config.Precheck = scenario.Precheck
	exchanger := exchange.NewExchanger[exchange.Member, string](config)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	assignment, err := exchanger.Assign(ctx, input, rng)
	duration = time.Since(start).Milliseconds()

	if errors.Is(err, exchange.ErrNoAssignment) {
		return duration, unsatisfiable
	} else if errors.Is(err, context.DeadlineExceeded) {
		return duration, timedOut
	} else if err != nil {
		log.Fatalf("an error occurred with %v participants, %v teams and history limit %v: %v", scenario.Participants, scenario.Teams, scenario.HistoryLimit, err)
	}

	if !exchanger.Verify(assignment, input) {
		log.Fatalf("verification failed with %v participants, %v teams and history limit %v", scenario.Participants, scenario.Teams, scenario.HistoryLimit)
	}
	return duration, solved
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Participants", "Teams", "History Limit", "Weighted", "Precheck", "Seed", "Duration(ms)", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			fmt.Sprintf("%d", result.Scenario.Participants),
			fmt.Sprintf("%d", result.Scenario.Teams),
			fmt.Sprintf("%d", result.Scenario.HistoryLimit),
			fmt.Sprintf("%v", result.Scenario.Weighted),
			fmt.Sprintf("%v", result.Scenario.Precheck),
			fmt.Sprintf("%d", result.Seed),
			fmt.Sprintf("%d", result.Duration),
			resultTypes[result.Result],
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
