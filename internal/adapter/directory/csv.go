// Package directory loads the contact list used for caller name lookup
// and for the outbound campaign queue. The file is a CSV with a "phone"
// column and, for name lookup, a "name" column.
package directory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/IROMIMPULSE15/SdC-Version-64/internal/ports"
)

// DefaultName is returned when a caller identifier has no directory match.
const DefaultName = "Unknown Name"

// suffixLen is the trailing digit count used for phone equality. Country
// codes and punctuation vary between the provider and the contact list,
// so both sides are reduced to their last 10 digits before comparison.
const suffixLen = 10

// Directory is a read-only phone-to-name mapping keyed by normalized
// phone suffix. Safe for concurrent readers; never written after load.
type Directory struct {
	names map[string]string
	log   *zap.Logger
}

var _ ports.ContactDirectory = (*Directory)(nil)

// Load reads the contact CSV at path. A missing file, missing columns or
// malformed rows degrade to an empty or partial mapping with a logged
// warning; startup is never blocked.
func Load(path string, log *zap.Logger) *Directory {
	d := &Directory{names: make(map[string]string), log: log}

	f, err := os.Open(path)
	if err != nil {
		log.Warn("Contact directory unavailable, name lookup will return the default placeholder",
			zap.String("path", path),
			zap.Error(err),
		)
		return d
	}
	defer f.Close()

	if err := d.load(f); err != nil {
		log.Warn("Contact directory could not be parsed",
			zap.String("path", path),
			zap.Error(err),
		)
		return d
	}

	log.Info("Loaded contacts for name lookup",
		zap.String("path", path),
		zap.Int("contacts", len(d.names)),
	)
	return d
}

func (d *Directory) load(r io.Reader) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	phoneCol, nameCol := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(strings.ToLower(col)) {
		case "phone":
			phoneCol = i
		case "name":
			nameCol = i
		}
	}
	if phoneCol < 0 || nameCol < 0 {
		return fmt.Errorf("required columns missing: need phone and name, got %v", header)
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row: skip it, keep what parsed so far.
			d.log.Warn("Skipping malformed contact row", zap.Error(err))
			continue
		}
		if phoneCol >= len(row) || nameCol >= len(row) {
			continue
		}
		phone := strings.TrimSpace(row[phoneCol])
		name := strings.TrimSpace(row[nameCol])
		if phone == "" || name == "" {
			continue
		}
		d.names[NormalizePhone(phone)] = name
	}
	return nil
}

// Resolve maps a caller identifier to a display name by trailing-digit
// suffix equality. ok is false on a miss; the returned name is then the
// default placeholder.
func (d *Directory) Resolve(callerID string) (string, bool) {
	if name, ok := d.names[NormalizePhone(callerID)]; ok {
		return name, true
	}
	return DefaultName, false
}

// Len reports the number of loaded contacts.
func (d *Directory) Len() int {
	return len(d.names)
}

// NormalizePhone strips everything but digits and keeps the trailing
// suffix, tolerating country-code prefixes and punctuation.
func NormalizePhone(p string) string {
	var b strings.Builder
	for _, r := range p {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > suffixLen {
		return digits[len(digits)-suffixLen:]
	}
	return digits
}

// Contact is one row of the campaign contact list, in file order.
type Contact struct {
	Phone string
	Name  string
}

// ReadContacts returns the ordered, non-empty phone entries of the CSV
// at path. Unlike Load, a missing file or missing phone column is an
// error: the campaign dialer cannot run without a contact list.
func ReadContacts(path string) ([]Contact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open contact list: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	phoneCol, nameCol := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(strings.ToLower(col)) {
		case "phone":
			phoneCol = i
		case "name":
			nameCol = i
		}
	}
	if phoneCol < 0 {
		return nil, fmt.Errorf("phone column not found in %s", path)
	}

	var contacts []Contact
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if phoneCol >= len(row) {
			continue
		}
		c := Contact{Phone: strings.TrimSpace(row[phoneCol])}
		if nameCol >= 0 && nameCol < len(row) {
			c.Name = strings.TrimSpace(row[nameCol])
		}
		if c.Phone == "" {
			continue
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}
