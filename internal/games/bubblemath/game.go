package bubblemath

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/bubble-math/internal/config"
	"github.com/vovakirdan/bubble-math/internal/core"
	"github.com/vovakirdan/bubble-math/internal/registry"
)

// HUD layout
const (
	hudRows = 3 // equation banner + status row + separator

	minScreenW = 40
	minScreenH = 16
)

// Visual characters for rendering
const (
	BubbleChar    = '○'
	SeparatorChar = '─'
)

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyTier stores the difficulty tier name set via CLI.
var difficultyTier string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyTier sets the difficulty tier ("easy", "normal", "hard").
func SetDifficultyTier(tier string) {
	difficultyTier = tier
}

// Game adapts a Session to the platform game interface.
type Game struct {
	mode    Mode
	session *Session
	runtime core.RuntimeConfig
	cfg     config.BubbleMathConfig
	tier    string

	paused         bool
	screenTooSmall bool
	initErr        error
}

// New creates a classic-mode Bubble Math game instance.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewBlitz creates a blitz-mode Bubble Math game instance.
func NewBlitz() *Game {
	return &Game{mode: ModeBlitz}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeBlitz {
		return "bubblemath_blitz"
	}
	return "bubblemath"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeBlitz {
		return "Bubble Math (Blitz)"
	}
	return "Bubble Math"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.initErr = nil

	cfg, err := config.Load(configPath)
	if err != nil {
		// An explicit config path errors out; only the implicit search
		// locations may fall back to defaults.
		if configPath != "" {
			g.initErr = err
			g.session = nil
			return
		}
		cfg = config.DefaultBubbleMathConfig()
	}
	g.cfg = cfg

	g.tier = difficultyTier
	if g.tier == "" {
		g.tier = "normal"
	}

	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	fieldH := runtime.ScreenH - hudRows
	if fieldH < 1 {
		fieldH = 1
	}
	g.session, g.initErr = NewSession(cfg, g.tier, g.mode, runtime.ScreenW, fieldH, runtime.TickRate, runtime.Seed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.initErr != nil {
		return core.StepResult{State: g.State()}
	}

	gameOver := g.session.Status() == StatusEnded

	// Handle restart
	if in.Has(core.ActionRestart) && gameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Quit request forces the session to end
	if in.Has(core.ActionQuit) && !gameOver {
		g.session.ForceEnd()
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !gameOver {
		g.paused = !g.paused
	}
	if g.paused || gameOver {
		return core.StepResult{State: g.State()}
	}

	g.session.Tick(g.resolveTap(in))

	return core.StepResult{State: g.State()}
}

// resolveTap maps this frame's tap (mouse cell or digit ordinal) to a bubble
// id, or -1 when nothing was tapped.
func (g *Game) resolveTap(in core.InputFrame) int {
	if in.TapOrdinal > 0 {
		if b := g.session.Field().BubbleByOrdinal(in.TapOrdinal); b != nil {
			return b.ID
		}
		return -1
	}
	if in.HasTap {
		// Screen coordinates are offset by the HUD rows
		fx := float64(in.TapX)
		fy := float64(in.TapY - hudRows)
		if b := g.session.Field().BubbleAt(fx, fy); b != nil {
			return b.ID
		}
	}
	return -1
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}
	if g.initErr != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Cannot start game")
		dst.DrawTextCentered(dst.Height()/2+1, g.initErr.Error())
		return
	}

	g.renderHUD(dst)
	g.renderBubbles(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the equation banner, score, timer and question counter.
func (g *Game) renderHUD(dst *core.Screen) {
	eq := g.session.Round().Equation
	dst.DrawTextColored((dst.Width()-len(eq.Text))/2, 0, eq.Text, core.ColorBrightWhite)

	scoreText := fmt.Sprintf("Score: %d", g.session.Score())
	dst.DrawText(1, 1, scoreText)

	qText := fmt.Sprintf("Q: %d", g.session.QuestionCount()+1)
	dst.DrawTextCentered(1, qText)

	timeText := fmt.Sprintf("Time: %ds", g.session.TimeRemaining())
	timeColor := core.ColorDefault
	if g.session.TimeRemaining() <= 10 {
		timeColor = core.ColorBrightRed
	}
	dst.DrawTextColored(dst.Width()-len(timeText)-1, 1, timeText, timeColor)

	dst.DrawHLine(0, hudRows-1, dst.Width(), SeparatorChar)
}

// renderBubbles draws every live bubble as a ring with its value centered
// and its spawn ordinal on top (the digit key that pops it).
func (g *Game) renderBubbles(dst *core.Screen) {
	for _, b := range g.session.Field().Bubbles() {
		if b.State != BubbleLive {
			continue
		}

		cx := int(b.Pos.X)
		cy := int(b.Pos.Y) + hudRows
		r := int(b.Radius)
		color := b.ColorHint()

		// Ring outline
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				d2 := dx*dx + dy*dy
				if d2 <= r*r && d2 > (r-1)*(r-1) {
					y := cy + dy
					if y >= hudRows { // Never draw over the HUD
						dst.SetColored(cx+dx, y, BubbleChar, color)
					}
				}
			}
		}

		// Value centered, ordinal above it
		value := strconv.Itoa(b.Value)
		if cy >= hudRows {
			dst.DrawTextColored(cx-len(value)/2, cy, value, core.ColorBrightWhite)
		}
		if cy-1 >= hudRows {
			ordinal := strconv.Itoa(b.SpawnOrder + 1)
			dst.DrawTextColored(cx-len(ordinal)/2, cy-1, ordinal, core.ColorGray)
		}
	}
}

// renderOverlay draws feedback flashes, pause and game-over messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.session.Feedback() {
	case FeedbackCorrect:
		dst.DrawTextColored(dst.Width()/2-4, hudRows, "Correct!", core.ColorBrightGreen)
	case FeedbackWrong:
		dst.DrawTextColored(dst.Width()/2-5, hudRows, "Try again!", core.ColorBrightRed)
	case FeedbackEscaped:
		dst.DrawTextColored(dst.Width()/2-4, hudRows, "Escaped!", core.ColorOrange)
	}

	if g.paused {
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
		return
	}

	if g.session.Status() == StatusEnded {
		report := g.session.Report()
		subtitle := fmt.Sprintf("Score: %d  |  %d/%d correct (%.0f%%)  |  Press R to restart",
			report.FinalScore, report.CorrectCount, report.QuestionCount, report.Accuracy*100)
		g.drawCenteredBox(dst, "TIME'S UP!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: g.initErr != nil}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Status() == StatusEnded || g.initErr != nil,
		Paused:   g.paused,
	}
}

// Report returns the session-end summary for persistence.
func (g *Game) Report() core.SessionReport {
	if g.session == nil {
		return core.SessionReport{}
	}
	return g.session.Report()
}

// Ensure the game produces session reports for the platform.
var _ core.Reporter = (*Game)(nil)

// Register the game variants with the registry
func init() {
	registry.Register("bubblemath", func() registry.Game {
		return New()
	})
	registry.Register("bubblemath_blitz", func() registry.Game {
		return NewBlitz()
	})
}
