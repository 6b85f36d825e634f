package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"

	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/config"
	"roomcrawl/pkg/game/devtools"
	"roomcrawl/pkg/game/gameplay"
	"roomcrawl/pkg/game/renderer"
	ebitenrenderer "roomcrawl/pkg/game/renderer/ebiten"
	"roomcrawl/pkg/game/renderer/tui"
	"roomcrawl/pkg/game/templates"
)

const (
	// frameDT is the simulated frame length of the text mode
	frameDT = 1.0 / 60
	// maxWalkFrames bounds a single walk command
	maxWalkFrames = 600
)

var walkKeys = map[string]world.Direction{
	"w": world.Up,
	"s": world.Down,
	"a": world.Left,
	"d": world.Right,
}

func initLocale() {
	gotext.Configure("locales", "en_GB", "default")
}

func loadConfig(path string) config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Loading config: %v", err)
	}
	return cfg
}

func loadCatalog(path string) templates.Catalog {
	if path == "" {
		return templates.DefaultCatalog()
	}
	catalog, err := templates.LoadCatalog(path)
	if err != nil {
		log.Fatalf("Loading templates: %v", err)
	}
	return catalog
}

// skipToLevel advances the run until it reaches level (for developer testing)
func skipToLevel(s *gameplay.Session, level int) error {
	if level <= s.Game.Level() {
		return nil
	}
	for s.Game.Level() < level {
		s.Game.Run.AdvanceAfterBoss()
	}
	return s.BuildLevel(s.Game.Seed, s.Config.GenerationRetries)
}

func main() {
	seed := flag.Int64("seed", 0, "generation seed (0 picks one from the clock)")
	configPath := flag.String("config", "", "path to a YAML config file")
	templatesPath := flag.String("templates", "", "path to a YAML room template catalogue")
	startLevel := flag.Int("level", 1, "starting level (for developer testing)")
	dump := flag.String("dump", "", "write map.txt for the first level to this directory and exit")
	view := flag.Bool("view", false, "open the graphical viewer instead of the text mode")
	flag.Parse()

	initLocale()

	cfg := loadConfig(*configPath)
	if *templatesPath == "" {
		*templatesPath = cfg.TemplatesFile
	}
	catalog := loadCatalog(*templatesPath)

	s, err := gameplay.NewSession(cfg, catalog, *seed)
	if err != nil {
		log.Fatalf("Starting run: %v", err)
	}
	if err := skipToLevel(s, *startLevel); err != nil {
		log.Fatalf("Skipping to level %d: %v", *startLevel, err)
	}

	if *dump != "" {
		path, err := devtools.DumpMapToFile(s.Game, *dump)
		if err != nil {
			log.Fatalf("Dumping map: %v", err)
		}
		fmt.Println(path)
		return
	}

	if *view {
		viewer := ebitenrenderer.New(s)
		renderer.SetRenderer(viewer)
		if err := viewer.Run(); err != nil {
			log.Fatalf("Viewer: %v", err)
		}
		return
	}

	renderer.SetRenderer(tui.New())
	renderer.Init()
	runText(s)
}

// runText is the line based mode: one command per line until quit or EOF
func runText(s *gameplay.Session) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		renderer.RenderFrame(s.Game)
		fmt.Print(renderer.StyleText(gotext.Get("w/a/s/d walk, k fight, q/e take, r reset, n new run, m map, x quit"), renderer.StyleSubtle))
		fmt.Print("\n> ")

		if !scanner.Scan() {
			return
		}
		if !processCommand(s, strings.TrimSpace(strings.ToLower(scanner.Text()))) {
			return
		}
	}
}

// processCommand applies one text command; false means quit
func processCommand(s *gameplay.Session, cmd string) bool {
	if dir, ok := walkKeys[cmd]; ok {
		walk(s, dir)
		return true
	}

	switch cmd {
	case "x", "quit", "exit":
		return false
	case "k":
		gameplay.ProcessAction(s, gameplay.ActionDefeatEnemy, frameDT)
	case "q":
		gameplay.ProcessAction(s, gameplay.ActionTakeLeft, frameDT)
	case "e":
		gameplay.ProcessAction(s, gameplay.ActionTakeRight, frameDT)
	case "r":
		gameplay.ProcessAction(s, gameplay.ActionResetLevel, frameDT)
	case "n":
		gameplay.ProcessAction(s, gameplay.ActionRestart, frameDT)
	case "m":
		path, err := devtools.DumpMapToFile(s.Game, ".")
		if err != nil {
			log.Printf("Map dump failed: %v", err)
		} else {
			s.Game.AddMessage(gotext.Get("Map dumped to %s", path))
		}
	case "":
	default:
		s.Game.AddMessage(gotext.Get("Unknown command: %s", cmd))
	}

	// Let pending timers run
	tick(s)
	return true
}

// walk moves the player in dir until a room transition finishes or a wall stops them
func walk(s *gameplay.Session, dir world.Direction) {
	action := gameplay.MoveAction(dir)
	for i := 0; i < maxWalkFrames; i++ {
		before := s.Player.Position()
		gameplay.ProcessAction(s, action, frameDT)
		tick(s)
		if s.Coordinator.Busy() {
			break
		}
		if s.Player.Position() == before {
			return
		}
	}
	for i := 0; i < maxWalkFrames && s.Coordinator.Busy(); i++ {
		tick(s)
	}
}

func tick(s *gameplay.Session) {
	if err := s.Tick(frameDT); err != nil {
		log.Printf("Tick failed: %v", err)
	}
}
