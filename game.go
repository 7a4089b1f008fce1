package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/popper/common"
	"github.com/milk9111/popper/glyph"
	"github.com/milk9111/popper/popper"
	"github.com/milk9111/popper/script"
	"github.com/milk9111/popper/spring"
	"github.com/milk9111/popper/themes"
)

type Game struct {
	engine  *popper.Engine
	ui      *ebitenui.UI
	watcher *themes.Watcher

	themeNames []string
	themeIndex int
	themeName  string
	spec       *themes.Spec

	debug bool
}

func NewGame(themeName, directionName string, autoPlay, watch, debug bool) (*Game, error) {
	g := &Game{
		themeNames: themes.Names(),
		themeName:  themeName,
		debug:      debug,
	}
	for i, n := range g.themeNames {
		if n == themeName {
			g.themeIndex = i
		}
	}

	spec, err := themes.LoadSpec(themeName)
	if err != nil {
		return nil, err
	}
	g.spec = spec

	dir := popper.ParseDirection(spec.Direction)
	if directionName != "" {
		dir = popper.ParseDirection(directionName)
	}

	opts := []popper.Option{
		popper.WithAutoPlay(autoPlay),
		popper.WithDirection(dir),
		popper.WithTheme(spec.Palette()),
		popper.WithProfile(spring.ProfileByName(spec.Profile)),
	}
	if spec.Spacing > 0 {
		opts = append(opts, popper.WithSpacing(spec.Spacing))
	}

	g.engine = popper.New(common.BaseWidth, common.BaseHeight, opts...)

	renderItem, err := g.renderItemFor(spec)
	if err != nil {
		return nil, err
	}
	g.engine.SetRenderItem(renderItem)

	g.ui = NewPanelUI(g)

	if watch {
		watcher, err := themes.NewWatcher("themes", filepath.Join("themes", "scripts"))
		if err != nil {
			log.Printf("theme watch disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

// renderItemFor builds the item renderer a theme asks for: the plain glyph,
// or a tengo-styled one when the spec names a script. A nil return means
// the engine's default heart.
func (g *Game) renderItemFor(spec *themes.Spec) (popper.RenderItemFunc, error) {
	base := glyph.ByName(spec.Glyph)

	if spec.Script == "" {
		if spec.Glyph == "" || spec.Glyph == "heart" {
			return nil, nil
		}
		return func(dst *ebiten.Image, it popper.Item) {
			base(dst, it.X, it.Y, glyph.CanonicalSize, it.Color)
		}, nil
	}

	src, err := themes.LoadScript(spec.Script)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", spec.Name, err)
	}
	styler, err := script.NewStyler(src)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", spec.Name, err)
	}

	return styler.RenderItem(base, spec.Palette(), g.engine.ItemCount), nil
}

func (g *Game) applyTheme(spec *themes.Spec) {
	g.spec = spec
	g.engine.SetTheme(spec.Palette())
	if spec.Spacing > 0 {
		g.engine.SetSpacing(spec.Spacing)
	} else {
		g.engine.SetSpacing(popper.DefaultSpacing)
	}
	g.engine.SetProfile(spring.ProfileByName(spec.Profile))
	if spec.Direction != "" {
		g.engine.SetDirection(popper.ParseDirection(spec.Direction))
	}

	renderItem, err := g.renderItemFor(spec)
	if err != nil {
		log.Printf("theme %s: %v", g.themeName, err)
		renderItem = nil
	}
	g.engine.SetRenderItem(renderItem)
}

func (g *Game) cycleTheme() {
	if len(g.themeNames) == 0 {
		return
	}
	g.themeIndex = (g.themeIndex + 1) % len(g.themeNames)
	g.themeName = g.themeNames[g.themeIndex]
	spec, err := themes.LoadSpec(g.themeName)
	if err != nil {
		log.Printf("theme %s: %v", g.themeName, err)
		return
	}
	g.applyTheme(spec)
}

func (g *Game) flipDirection() {
	if g.engine.Direction() == popper.Descending {
		g.engine.SetDirection(popper.Ascending)
	} else {
		g.engine.SetDirection(popper.Descending)
	}
}

// onThemeFileChanged reloads the active theme when its yaml or script file
// is edited on disk.
func (g *Game) onThemeFileChanged(name string) {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	matchesScript := g.spec != nil && g.spec.Script != "" &&
		filepath.Base(name) == filepath.Base(g.spec.Script)
	if base != g.themeName && !matchesScript {
		return
	}
	spec, err := themes.LoadSpec(g.themeName)
	if err != nil {
		log.Printf("theme %s: %v", g.themeName, err)
		return
	}
	log.Printf("reloaded theme %s", g.themeName)
	g.applyTheme(spec)
}

func (g *Game) Update() error {
	if g.watcher != nil {
		select {
		case name, ok := <-g.watcher.Events:
			if ok {
				g.onThemeFileChanged(name)
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("theme watch: %v", err)
			}
		default:
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.engine.Start()
	}

	g.ui.Update()
	g.engine.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	g.engine.Draw(screen)
	g.ui.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.2f\ntheme: %s\ndirection: %s\nitems: %d\nvisible: %v\noffset: %.1f",
			ebiten.ActualFPS(), g.themeName, g.engine.Direction(),
			g.engine.ItemCount(), g.engine.Visible(), g.engine.Offset()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.engine.Close()
}
