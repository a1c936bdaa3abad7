// This file is part of Shmem800.
//
// Shmem800 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Shmem800 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Shmem800.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// WarningBoilerPlate is written to the head of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand while the program is running ***"

// DefaultPrefsFile is the default filename of the preferences file.
const DefaultPrefsFile = "preferences"

// ErrNoPrefsFile is returned by Load() when the prefs file does not exist.
var ErrNoPrefsFile = errors.New("prefs: no prefs file")

const keySeparator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySeparator, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the file.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if strings.Contains(key, keySeparator) || strings.ContainsAny(key, "\n;") {
		return fmt.Errorf("prefs: illegal key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: duplicate key (%s)", key)
	}
	dsk.entries[key] = p

	return nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// Save current preference values to disk. Values in the existing file that are
// not registered with this Disk are preserved.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	// values in the file that we don't know about are kept
	existing, err := readFile(dsk.path)
	if err != nil && !errors.Is(err, ErrNoPrefsFile) {
		return err
	}
	for k, p := range dsk.entries {
		existing[k] = p.String()
	}

	keys := make([]string, 0, len(existing))
	for k := range existing {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySeparator, existing[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("prefs: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. Values on the command line stack take
// precedence over values in the file. The command line is consulted even if
// the prefs file does not exist, in which case ErrNoPrefsFile is returned
// after the command line values have been applied.
func (dsk *Disk) Load() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	values, loadErr := readFile(dsk.path)
	if loadErr != nil && !errors.Is(loadErr, ErrNoPrefsFile) {
		return loadErr
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			values[k] = v
		}
		if v, ok := values[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return loadErr
}

// readFile returns the key/value pairs in the named prefs file. The map is
// never nil.
func readFile(path string) (map[string]string, error) {
	values := make(map[string]string)

	if path == "" {
		return values, ErrNoPrefsFile
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return values, ErrNoPrefsFile
		}
		return values, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line is the boilerplate
	if scanner.Scan() && scanner.Text() != WarningBoilerPlate {
		return values, fmt.Errorf("prefs: %s is not a prefs file", path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySeparator, 2)
		if len(kv) == 2 {
			values[kv[0]] = kv[1]
		}
	}
	if err := scanner.Err(); err != nil {
		return values, fmt.Errorf("prefs: %w", err)
	}

	return values, nil
}
