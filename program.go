package main

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"

	"github.com/adddTer/neonflow/internal/config"
	"github.com/adddTer/neonflow/internal/difficulty"
	"github.com/adddTer/neonflow/internal/game"
	"github.com/adddTer/neonflow/internal/gen"
	"github.com/adddTer/neonflow/internal/parser"
	"github.com/adddTer/neonflow/internal/render"
	"github.com/adddTer/neonflow/internal/store"
	"github.com/adddTer/neonflow/internal/theme"
)

type Program struct {
	Parser    parser.Parser
	Generator gen.Generator
	Store     store.Store
	Theme     theme.Theme
	Renderer  render.Renderer

	audioFile, onsetFile, structureFile string

	onsets     []game.Onset
	structure  *game.Structure
	sum        string
	songLength float64

	streamer beep.StreamSeekCloser
	format   beep.Format

	chart *game.Chart
}

func (p *Program) Init() error {
	// Ensure our Default implementations are used as interfaces
	p.Parser = &parser.DefaultParser{}
	p.Generator = &gen.DefaultGenerator{}
	p.Store = &store.DefaultStore{}
	p.Theme = &theme.DefaultTheme{}
	p.Renderer = &render.DefaultRenderer{}

	if err := filepath.Walk(*config.Directory, func(path string, info os.FileInfo, err error) error {
		if nil != err || info.IsDir() {
			return err
		}
		switch {
		case strings.HasSuffix(info.Name(), ".onsets.json"):
			p.onsetFile = path
		case strings.HasSuffix(info.Name(), ".structure.json"):
			p.structureFile = path
		case strings.HasSuffix(info.Name(), ".mp3"), strings.HasSuffix(info.Name(), ".ogg"):
			p.audioFile = path
		}
		return nil
	}); nil != err {
		return fmt.Errorf("unable to walk song directory: %w", err)
	}

	if p.onsetFile == "" {
		return errors.New("unable to find a .onsets.json file in given directory")
	}

	var err error
	p.onsets, err = p.Parser.ParseOnsets(p.onsetFile)
	if nil != err {
		return err
	}
	p.sum, err = hashFile(p.onsetFile)
	if nil != err {
		return err
	}

	if err := p.openAudio(); nil != err {
		return err
	}

	if p.structureFile != "" {
		p.structure, err = p.Parser.ParseStructure(p.structureFile)
		if nil != err {
			return err
		}
	} else {
		log.Println("no structure file, falling back to a single section")
		p.structure = parser.DefaultStructure(*config.FallbackBPM, p.songLength)
	}

	return p.Store.Init(*config.DBPath)
}

func (p *Program) Deinit() {
	if nil != p.streamer {
		p.streamer.Close()
	}
	p.Store.Deinit()
}

// openAudio decodes the song far enough to learn its length; playback
// reuses the same streamer. A missing audio file is tolerated by sizing
// the song off the last onset.
func (p *Program) openAudio() error {
	if p.audioFile == "" {
		p.songLength = p.onsets[len(p.onsets)-1].Time + 2.0
		return nil
	}
	f, err := os.Open(p.audioFile)
	if nil != err {
		return err
	}
	if strings.HasSuffix(p.audioFile, ".ogg") {
		p.streamer, p.format, err = vorbis.Decode(f)
	} else {
		p.streamer, p.format, err = mp3.Decode(f)
	}
	if nil != err {
		return err
	}
	p.songLength = p.format.SampleRate.D(p.streamer.Len()).Seconds()
	return nil
}

func (p *Program) GenerateChart() error {
	level := difficulty.Clamp(config.Difficulty())
	notes, err := p.Generator.Generate(p.onsets, p.structure, gen.Options{
		Difficulty: level,
		LaneCount:  *config.Lanes,
		PlayStyle:  config.PlayStyle(),
		Features:   config.Features(),
		Seed:       *config.Seed,
	})
	if errors.Is(err, gen.ErrNoNotes) {
		return fmt.Errorf("%w; try a higher difficulty or louder onset data", err)
	}
	if nil != err {
		return err
	}

	p.chart = game.NewChart(notes, *config.Lanes, level)
	p.chart.Rating = difficulty.Rate(notes, p.songLength)
	p.Store.Save(p.sum, p.chart)
	return nil
}

func (p *Program) PrintSummary() {
	c := p.chart
	fmt.Printf("%v notes (%v holds, %v catches) over %.1fs\n",
		c.NoteCount, c.HoldCount, c.CatchCount, p.songLength)
	fmt.Printf("difficulty %v rated %.2f\n", c.Difficulty, c.Rating)

	previous := p.Store.Load(p.sum)
	if len(previous) > 1 {
		fmt.Println("previous generations of this song:")
		for _, s := range previous[:len(previous)-1] {
			fmt.Printf("  difficulty %v  %5v notes  rated %.2f\n",
				s.Difficulty, s.Chart.NoteCount, s.Rating)
		}
	}
}

// Preview scrolls the chart toward a hit bar in time with the audio.
func (p *Program) Preview() error {
	columns, rows, err := p.Renderer.Size()
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}

	keyChannel, err := keyboard.GetKeys(128)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	lanes := p.chart.Lanes
	mc := columns >> 1
	cis := make([]int, lanes)
	for i := range cis {
		cis[i] = mc + (2*i-(lanes-1))*int(*config.ColumnSpacing)
	}
	hitRow := rows - int(*config.BarRow)

	if nil != p.streamer {
		speaker.Init(p.format.SampleRate, p.format.SampleRate.N(time.Second/60))
		go func() {
			time.Sleep(*config.Delay)
			speaker.Play(p.streamer)
		}()
	}

	if err := p.Renderer.Init(); nil != err {
		return err
	}
	defer func() {
		// Restore the terminal state
		p.Renderer.Deinit()
	}()

	for _, note := range p.chart.Notes {
		note.Row = -1
	}

	p.Renderer.RenderLoop(*config.Delay, func(startTime time.Time, duration time.Duration) bool {
		t := duration.Seconds()
		if t-3.0 > p.chart.Length() {
			return false
		}

		for i := 0; i < len(keyChannel); i++ {
			key := <-keyChannel
			if key.Key == keyboard.KeyEsc {
				return false
			}
		}

		for i := 0; i < lanes; i++ {
			p.Renderer.Fill(hitRow, cis[i], p.Theme.RenderHitField(i))
		}

		for _, note := range p.chart.Notes {
			col := cis[note.Lane]
			body := 0
			if note.IsHold() {
				body = int(math.Round(note.Duration * 1000 / config.ScrollSpeed))
			}

			// Clear the head and any hold body trailing above it
			for r := note.Row - body; r <= note.Row; r++ {
				if r > 0 && r < rows {
					p.Renderer.Fill(r, col, " ")
				}
			}

			distance := int(math.Round((note.Time - t) * 1000 / config.ScrollSpeed))
			previous := note.Row
			note.Row = hitRow - distance

			if !note.Hit && previous < hitRow && note.Row >= hitRow {
				note.Hit = true
				p.Renderer.AddDecoration(cis[note.Lane], hitRow, p.Theme.RenderHitSplash(note.Lane), 12)
			}

			if note.Row > 0 && note.Row < rows {
				sym, c := p.Theme.RenderNote(note.Lane, note.Type)
				p.Renderer.FillColor(note.Row, col, c, sym)
			}
			if body > 0 {
				sym, c := p.Theme.RenderHoldBody(note.Lane)
				for r := note.Row - body; r < note.Row; r++ {
					if r > 0 && r < rows {
						p.Renderer.FillColor(r, col, c, sym)
					}
				}
			}
		}

		return true
	})
	return nil
}

func hashFile(file string) (string, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return "", err
	}
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}
