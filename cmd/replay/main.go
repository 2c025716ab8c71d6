// Command replay re-simulates a recorded session without a window and
// prints how it ended.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/younwookim/unfair/internal/application/replay"
	"github.com/younwookim/unfair/internal/application/system"
	"github.com/younwookim/unfair/internal/domain/event"
	"github.com/younwookim/unfair/internal/infrastructure/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("Replay failed: %v", err)
	}
}

func run(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("replay", flag.ContinueOnError)
	replayFlag := flags.String("replay", "", "Replay file to simulate")
	configsFlag := flags.String("configs", "cmd/game/configs", "Config directory")
	verboseFlag := flags.Bool("v", false, "Print per-event counts")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *replayFlag == "" {
		return fmt.Errorf("-replay is required")
	}

	data, err := replay.LoadReplay(*replayFlag)
	if err != nil {
		return err
	}
	cfg, err := config.NewLoader(*configsFlag).LoadAll()
	if err != nil {
		return err
	}

	res, err := replay.Simulate(cfg.Physics, system.LoadStages(cfg.Stages), *data)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "stage %d, seed %d: %d/%d frames, %d lives\n",
		data.Stage, data.Seed, res.Frames, len(data.Frames), replay.NewReplayer(*data).Lives())
	fmt.Fprintf(out, "state: %s, deaths: %d, won: %t\n", res.FinalState, res.Deaths, res.Won)
	fmt.Fprintf(out, "actor: (%.2f, %.2f)\n", res.ActorPos.X, res.ActorPos.Y)
	if res.LastDeath != nil {
		fmt.Fprintf(out, "last death: %s at (%.0f, %.0f)\n", res.LastDeath.Reason, res.LastDeath.At.X, res.LastDeath.At.Y)
	}

	if *verboseFlag {
		kinds := make([]event.Kind, 0, len(res.Events))
		for k := range res.Events {
			kinds = append(kinds, k)
		}
		sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
		for _, k := range kinds {
			fmt.Fprintf(out, "  %-12s %d\n", k, res.Events[k])
		}
	}
	return nil
}
