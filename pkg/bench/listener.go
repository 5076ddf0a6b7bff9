package bench

// Receives the arena progress. Every worker gets its own clone,
// the callbacks of different clones may run concurrently.
type ListenerLike interface {
	Clone() ListenerLike
	SetRow(row int)
	OnStart()
	OnGameStart()
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	// Called once, after every worker is done
	Summary(info VersusSummaryInfo)
	OnEnd()
}

// Listener that ignores everything
type DefaultListener struct {
	row int
}

func (d *DefaultListener) Clone() ListenerLike {
	return &DefaultListener{row: d.row}
}

func (d *DefaultListener) SetRow(row int) {
	d.row = row
}

func (d *DefaultListener) OnStart()                        {}
func (d *DefaultListener) OnGameStart()                    {}
func (d *DefaultListener) OnMoveMade(VersusWorkerInfo)     {}
func (d *DefaultListener) OnFinishedGame(VersusWorkerInfo) {}
func (d *DefaultListener) OnFinishedWork(VersusWorkerInfo) {}
func (d *DefaultListener) Summary(VersusSummaryInfo)       {}
func (d *DefaultListener) OnEnd()                          {}
