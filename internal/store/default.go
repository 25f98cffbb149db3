package store

import (
	"database/sql"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/adddTer/neonflow/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultStore struct {
	db *sql.DB
}

// LanesCompact holds one lane's notes column-wise, which compresses the
// stored blob for dense charts.
type LanesCompact struct {
	Lane      int
	Times     []float64
	Durations []float64
	Catches   []bool
}

func compactNotes(notes []*game.Note, lanes int) []LanesCompact {
	cs := make([]LanesCompact, lanes)
	for i := range cs {
		cs[i].Lane = i
	}
	for _, n := range notes {
		c := &cs[n.Lane]
		c.Times = append(c.Times, n.Time)
		c.Durations = append(c.Durations, n.Duration)
		c.Catches = append(c.Catches, n.Type == game.NoteCatch)
	}
	return cs
}

func uncompactNotes(cs []LanesCompact) []*game.Note {
	notes := []*game.Note{}
	for _, c := range cs {
		for i, t := range c.Times {
			noteType := game.NoteNormal
			if c.Catches[i] {
				noteType = game.NoteCatch
			}
			notes = append(notes, &game.Note{
				ID:       uuid.NewString(), // Note ids are not stable across runs
				Time:     t,
				Lane:     c.Lane,
				Type:     noteType,
				Duration: c.Durations[i],
			})
		}
	}
	slices.SortStableFunc(notes, func(a, b *game.Note) bool {
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		return a.Lane < b.Lane
	})
	return notes
}

func (s *DefaultStore) Init(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists charts
	  (
		  id integer not null primary key,
		  sum text,
		  difficulty real,
		  rating real,
		  lanes integer,
		  notes bytearray
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		return err
	}

	s.db = db
	return nil
}

func (s *DefaultStore) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func (s *DefaultStore) Save(sum string, chart *game.Chart) {
	data, err := json.Marshal(compactNotes(chart.Notes, chart.Lanes))
	if nil != err {
		log.Println("unable to marshal notes", err)
		return
	}
	_, err = s.db.Exec("insert into charts(sum, difficulty, rating, lanes, notes) values(?, ?, ?, ?, ?)",
		sum, chart.Difficulty, chart.Rating, chart.Lanes, data)
	if nil != err {
		log.Println("unable to save chart", err)
		return
	}
}

func (s *DefaultStore) Load(sum string) []Saved {
	saved := []Saved{}
	rows, err := s.db.Query("select sum, difficulty, rating, lanes, notes from charts where sum = ?", sum)
	if nil != err && err != sql.ErrNoRows {
		log.Println("unable to load charts", err)
		return saved
	}
	defer rows.Close()
	for rows.Next() {
		var (
			chartSum   string
			diff       float64
			rating     float64
			lanes      int
			notesBytes []byte
		)
		rows.Scan(&chartSum, &diff, &rating, &lanes, &notesBytes)
		var cs []LanesCompact
		if err := json.Unmarshal(notesBytes, &cs); nil != err {
			log.Println("unable to unmarshal stored chart")
			continue
		}
		chart := game.NewChart(uncompactNotes(cs), lanes, diff)
		chart.Rating = rating
		saved = append(saved, Saved{
			Sum:        chartSum,
			Difficulty: diff,
			Rating:     rating,
			Chart:      chart,
		})
	}
	return saved
}
