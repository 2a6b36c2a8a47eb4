package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/Garsondee/Pong/internal/match"
)

type runStats struct {
	runIndex int
	seed     int64

	winner match.Side
	score  match.Score
	ticks  int

	firstScoreTick int
	faceHits       int
	edgeHits       int
	wallBounces    int
	serves         int
	longestRally   int
	topSpeed       float64
	leftPoints     []int // ticks on which each side scored
	rightPoints    []int
	finalPoint     int
	finalRally     string
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var preset string
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless matches")
	flag.IntVar(&ticks, "ticks", 36000, "tick budget per match")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&preset, "preset", "classic", "rules preset: "+strings.Join(match.PresetNames, ", "))
	flag.BoolVar(&verbose, "verbose", false, "print every match event")
	flag.Parse()

	rules, err := reportRules(preset, runs, ticks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("preset=%s collision=%s serve=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n",
		preset, rules.Collision, rules.Serve, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, sim := playMatch(i+1, seed, ticks, rules)
		all = append(all, stats)
		printRun(stats)
		if verbose {
			fmt.Print(sim.Log.Format())
			fmt.Println()
		}
	}

	printAggregate(all, rules.WinScore)
}

// reportRules validates the flags and returns the preset with both paddles
// under computer control.
func reportRules(preset string, runs, ticks int) (match.Rules, error) {
	if runs <= 0 {
		return match.Rules{}, fmt.Errorf("-runs must be > 0")
	}
	if ticks <= 0 {
		return match.Rules{}, fmt.Errorf("-ticks must be > 0")
	}
	rules, err := match.Preset(preset)
	if err != nil {
		return match.Rules{}, err
	}
	rules.Left, rules.Right = match.ControllerComputer, match.ControllerComputer
	return rules, nil
}

// playMatch runs one computer-vs-computer match until it ends or the tick
// budget runs out.
func playMatch(runIndex int, seed int64, ticks int, rules match.Rules) (runStats, *match.Sim) {
	sim := match.NewSim(match.WithRules(rules), match.WithSeed(seed))
	rs := runStats{runIndex: runIndex, seed: seed}

	for sim.State.Phase == match.PhasePlaying && sim.State.Tick < ticks {
		for _, e := range sim.Step(match.Input{}) {
			if e.Rally > rs.longestRally {
				rs.longestRally = e.Rally
			}
			if e.Kind != match.EventServe && e.Speed > rs.topSpeed {
				rs.topSpeed = e.Speed
			}
		}
	}

	rs.winner = sim.State.Winner
	rs.score = sim.State.Score
	rs.ticks = sim.State.Tick
	rs.leftPoints = pointTicks(sim.Log, match.SideLeft)
	rs.rightPoints = pointTicks(sim.Log, match.SideRight)
	rs.firstScoreTick = firstPoint(rs.leftPoints, rs.rightPoints)
	rs.finalPoint, rs.finalRally = finalRally(sim.Log)
	rs.faceHits = sim.Log.CountCategory("paddle", match.EventPaddleHit.String())
	rs.edgeHits = sim.Log.CountCategory("paddle", match.EventEdgeHit.String())
	rs.wallBounces = sim.Log.CountCategory("ball", match.EventWallBounce.String())
	rs.serves = sim.Log.CountCategory("ball", match.EventServe.String())
	return rs, sim
}

// pointTicks lists the ticks on which side scored.
func pointTicks(ml *match.MatchLog, side match.Side) []int {
	var ticks []int
	for _, e := range ml.FilterSide(side.String()) {
		if e.Category == "score" {
			ticks = append(ticks, e.Tick)
		}
	}
	return ticks
}

// firstPoint is the earliest tick in either timeline, or -1.
func firstPoint(left, right []int) int {
	first := -1
	for _, ticks := range [][]int{left, right} {
		if len(ticks) > 0 && (first < 0 || ticks[0] < first) {
			first = ticks[0]
		}
	}
	return first
}

// finalRally returns the tick of the last point and the log lines from the
// serve that started its rally up to the point itself.
func finalRally(ml *match.MatchLog) (int, string) {
	last, ok := ml.LastOf("score", "score")
	if !ok {
		return -1, ""
	}
	from := 0
	for _, e := range ml.FilterTickRange(0, last.Tick-1) {
		if e.Category == "ball" && e.Key == "serve" {
			from = e.Tick
		}
	}
	return last.Tick, ml.FormatRange(from+1, last.Tick)
}

// classifyMatch labels a finished run by how one-sided it was.
func classifyMatch(rs runStats, winScore int) (string, string) {
	if rs.winner == match.SideNone {
		return "unfinished", fmt.Sprintf("no winner after %d ticks", rs.ticks)
	}
	margin := rs.score.Of(rs.winner) - rs.score.Of(rs.winner.Opponent())
	switch {
	case margin <= 1:
		return "close", fmt.Sprintf("won by %d", margin)
	case margin*2 >= winScore:
		return "decisive", fmt.Sprintf("won by %d of %d", margin, winScore)
	default:
		return "clear", fmt.Sprintf("won by %d", margin)
	}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("result: winner=%s score=%s ticks=%d first_score=%d\n",
		rs.winner, rs.score, rs.ticks, rs.firstScoreTick)
	fmt.Printf("contacts: face=%d edge=%d wall=%d serves=%d longest_rally=%d top_speed=%.2f\n",
		rs.faceHits, rs.edgeHits, rs.wallBounces, rs.serves, rs.longestRally, rs.topSpeed)
	fmt.Printf("timeline: left=%s right=%s\n", joinTicks(rs.leftPoints), joinTicks(rs.rightPoints))
	if rs.finalPoint >= 0 {
		fmt.Printf("final rally (point at T=%d):\n%s", rs.finalPoint, rs.finalRally)
	}
	fmt.Println()
}

func printAggregate(all []runStats, winScore int) {
	wins := map[match.Side]int{}
	kinds := map[string]int{}
	totalTicks := 0
	totalFace := 0
	totalEdge := 0
	totalWall := 0
	totalRally := 0
	topSpeed := 0.0
	firstScores := make([]int, 0, len(all))

	for _, rs := range all {
		wins[rs.winner]++
		kind, _ := classifyMatch(rs, winScore)
		kinds[kind]++
		totalTicks += rs.ticks
		totalFace += rs.faceHits
		totalEdge += rs.edgeHits
		totalWall += rs.wallBounces
		totalRally += rs.longestRally
		if rs.topSpeed > topSpeed {
			topSpeed = rs.topSpeed
		}
		if rs.firstScoreTick >= 0 {
			firstScores = append(firstScores, rs.firstScoreTick)
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("wins: left=%d right=%d unfinished=%d\n",
		wins[match.SideLeft], wins[match.SideRight], wins[match.SideNone])
	fmt.Printf("outcomes: %s\n", joinCounts(kinds))
	fmt.Printf("avg_per_run: ticks=%.1f face=%.1f edge=%.1f wall=%.1f longest_rally=%.1f\n",
		avg(totalTicks, len(all)), avg(totalFace, len(all)), avg(totalEdge, len(all)),
		avg(totalWall, len(all)), avg(totalRally, len(all)))
	fmt.Printf("avg_first_score_tick=%s top_speed=%.2f\n", avgTickString(firstScores), topSpeed)
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[k])
	}
	return strings.Join(parts, " ")
}

func joinTicks(ticks []int) string {
	if len(ticks) == 0 {
		return "none"
	}
	parts := make([]string, len(ticks))
	for i, t := range ticks {
		parts[i] = strconv.Itoa(t)
	}
	return strings.Join(parts, ",")
}
