package internal

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"circular-lab/repositories"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

// InspectRow is one circular as shown on the inspect page.
type InspectRow struct {
	Key     string
	Title   string
	Sender  string
	Status  string
	Read    string
	Updated string
}

type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// StartDebugServer serves a read-only HTML view over the circular records
// in Badger. Diagnostics only; it bypasses the service layer on purpose so
// stored bytes can be checked against what the API reports.
func StartDebugServer(db *badger.DB, port int, statsProvider StatsProvider) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "circular:"
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				key := string(item.Key())
				// Index entries hold bare IDs, not records.
				if strings.HasPrefix(key, "idx:") {
					continue
				}
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapRow(key, val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux)
	}()
}

func mapRow(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:     key,
		Title:   "--",
		Sender:  "--",
		Status:  "RAW",
		Read:    "-",
		Updated: "--:--:--",
	}
	if !strings.HasPrefix(key, "circular:") {
		row.Read = fmt.Sprintf("%d bytes", len(val))
		return row
	}
	c, err := repositories.Decode(val)
	if err != nil {
		return row
	}
	row.Title = c.Title
	row.Sender = c.SenderName
	if row.Sender == "" {
		row.Sender = c.SenderID
	}
	row.Status = string(c.Status)
	row.Read = fmt.Sprintf("%d/%d", c.ReadCount(), c.RecipientCount())
	row.Updated = c.UpdatedAt.Format("15:04:05")
	return row
}
