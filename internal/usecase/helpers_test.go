package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/stretchr/testify/mock"
)

var testDelays = Delays{Thinking: 500 * time.Millisecond, Reset: 1500 * time.Millisecond}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type scheduledTask struct {
	delay time.Duration
	run   func()
}

// manualScheduler queues callbacks until the test fires them.
type manualScheduler struct {
	tasks []scheduledTask
}

func (that *manualScheduler) AfterFunc(delay time.Duration, task func()) {
	that.tasks = append(that.tasks, scheduledTask{delay: delay, run: task})
}

func (that *manualScheduler) Pending() int {
	return len(that.tasks)
}

// RunNext fires the oldest pending callback and returns its delay.
func (that *manualScheduler) RunNext() time.Duration {
	task := that.tasks[0]
	that.tasks = that.tasks[1:]
	task.run()

	return task.delay
}

func (that *manualScheduler) RunAll() {
	for len(that.tasks) > 0 {
		that.RunNext()
	}
}

// recordingPresenter keeps the last state pushed for every output.
type recordingPresenter struct {
	board      entity.Board
	status     string
	highlights [][]int
	scores     map[entity.ScoreKey]int
	renders    int
}

func newRecordingPresenter() *recordingPresenter {
	return &recordingPresenter{scores: map[entity.ScoreKey]int{}}
}

func (that *recordingPresenter) Render(board entity.Board) {
	that.board = board
	that.renders++
}

func (that *recordingPresenter) ShowStatus(text string) {
	that.status = text
}

func (that *recordingPresenter) HighlightLine(line []int) {
	that.highlights = append(that.highlights, line)
}

func (that *recordingPresenter) UpdateScore(key entity.ScoreKey, value int) {
	that.scores[key] = value
}

type mockPresenter struct {
	mock.Mock
}

func (that *mockPresenter) Render(board entity.Board) {
	that.Called(board)
}

func (that *mockPresenter) ShowStatus(text string) {
	that.Called(text)
}

func (that *mockPresenter) HighlightLine(line []int) {
	that.Called(line)
}

func (that *mockPresenter) UpdateScore(key entity.ScoreKey, value int) {
	that.Called(key, value)
}
