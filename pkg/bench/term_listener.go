package bench

import (
	"fmt"
	"io"
	"sync"

	"github.com/IlikeChooros/go-draughts/pkg/draughts"
	"github.com/muesli/termenv"
)

// State shared by all clones of a TermListener
type termShared struct {
	mu        sync.Mutex
	output    *termenv.Output
	lastBoard *draughts.Position
	lastGame  VersusWorkerInfo
}

// Terminal progress display: one line per worker, then a summary with the
// final board of the last finished game
type TermListener struct {
	shared *termShared
	row    int
}

func NewTermListener(w io.Writer, opts ...termenv.OutputOption) *TermListener {
	return &TermListener{
		shared: &termShared{output: termenv.NewOutput(w, opts...)},
		row:    statsRowStart,
	}
}

func (tl *TermListener) Clone() ListenerLike {
	return &TermListener{shared: tl.shared, row: tl.row}
}

func (tl *TermListener) SetRow(row int) {
	tl.row = row
}

func (tl *TermListener) OnStart() {
	out := tl.shared.output
	out.HideCursor()
	out.ClearScreen()
	fmt.Fprintln(out, out.String("Versus arena").Bold().String())
}

func (tl *TermListener) OnGameStart() {}

func (tl *TermListener) progress(info VersusWorkerInfo, status string) {
	tl.shared.mu.Lock()
	defer tl.shared.mu.Unlock()

	out := tl.shared.output
	out.MoveCursor(tl.row, 1)
	out.ClearLine()
	fmt.Fprintf(out, "worker %d: game %d/%d, ply %3d | %s %d - %d %s, draws %d %s",
		info.WorkerID, info.FinishedGames+1, info.NGames, info.GameMoveNum,
		info.P1Name, info.P1Wins, info.P2Wins, info.P2Name, info.Draws, status)
}

func (tl *TermListener) OnMoveMade(info VersusWorkerInfo) {
	tl.progress(info, "")
}

func (tl *TermListener) OnFinishedGame(info VersusWorkerInfo) {
	tl.progress(info, info.Finish.String())

	tl.shared.mu.Lock()
	tl.shared.lastBoard = info.Position
	tl.shared.lastGame = info
	tl.shared.mu.Unlock()
}

func (tl *TermListener) OnFinishedWork(info VersusWorkerInfo) {
	out := tl.shared.output
	tl.progress(info, out.String("done").Foreground(out.Color("2")).String())
}

func (tl *TermListener) Summary(info VersusSummaryInfo) {
	tl.shared.mu.Lock()
	defer tl.shared.mu.Unlock()

	out := tl.shared.output
	out.MoveCursor(statsRowStart+info.Workers+1, 1)
	fmt.Fprintln(out, out.String("Summary").Bold().String())
	fmt.Fprintf(out, "games: %d, workers: %d\n", info.TotalGames, info.Workers)
	fmt.Fprintf(out, "%s: %s, %s: %s, draws: %d\n",
		info.P1Name, out.String(fmt.Sprint(info.P1Wins)).Foreground(out.Color("2")).String(),
		info.P2Name, out.String(fmt.Sprint(info.P2Wins)).Foreground(out.Color("1")).String(),
		info.Draws)
	fmt.Fprintf(out, "first to move won: %d, second to move won: %d\n", info.FirstToMoveWins, info.SecondToMoveWins)

	if tl.shared.lastBoard != nil {
		last := tl.shared.lastGame
		fmt.Fprintf(out, "\nlast game (worker %d, %d plies, %v):\n", last.WorkerID, last.GameMoveNum, last.Finish)
		fmt.Fprint(out, RenderBoard(out, tl.shared.lastBoard))
	}
}

func (tl *TermListener) OnEnd() {
	tl.shared.output.ShowCursor()
}
