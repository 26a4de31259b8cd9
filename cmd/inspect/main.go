package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"circular-lab/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	// Circular records by default, "notif:" or "user:" to inspect the rest.
	prefix := flag.String("prefix", "circular:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Title", "Sender", "Status", "Read", "Recipients", "Created"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()

			// Index entries hold bare IDs, nothing to decode there.
			if strings.HasPrefix(string(item.Key()), "idx:") {
				continue
			}

			err := item.Value(func(v []byte) error {
				c, err := repositories.Decode(v)
				if err != nil {
					// Log and keep scanning instead of stopping the whole dump.
					fmt.Printf("Error decoding key %s: %v\n", string(item.Key()), err)
					return nil
				}

				sender := c.SenderName
				if sender == "" {
					sender = c.SenderID
				}

				// First 8 characters of the key ID are enough to identify a row.
				displayKey := string(item.Key())
				if idx := strings.LastIndex(displayKey, ":"); idx >= 0 && len(displayKey) > idx+9 {
					displayKey = displayKey[:idx+9]
				}

				table.Append([]string{
					displayKey,
					c.Title,
					sender,
					string(c.Status),
					fmt.Sprintf("%d/%d", c.ReadCount(), c.RecipientCount()),
					strings.Join(c.Recipients(), " "),
					c.CreatedAt.Format("15:04:05"),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

// openDB opens Badger read-only. BypassLockGuard allows inspection while
// the server holds the directory lock.
func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	return badger.Open(opts)
}
