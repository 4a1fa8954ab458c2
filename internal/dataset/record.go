package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// YearRecord is one year's salary and job statistics.
type YearRecord struct {
	Year          int       `json:"year"`
	TotalJobs     int       `json:"total_jobs"`
	AverageSalary float64   `json:"average_salary"`
	JobTitles     JobTitles `json:"job_titles"`
}

// TitleCount pairs a job title with its number of postings.
type TitleCount struct {
	Title string
	Count int
}

// JobTitles is the per-title breakdown of a YearRecord. It decodes from a
// JSON object and keeps the order in which the keys were written.
type JobTitles []TitleCount

// UnmarshalJSON decodes a JSON object of title -> count. A repeated title
// overwrites the earlier count but keeps its first position.
func (jt *JobTitles) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*jt = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("job_titles: expected object, got %v", tok)
	}

	out := JobTitles{}
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		title, ok := tok.(string)
		if !ok {
			return fmt.Errorf("job_titles: unexpected key %v", tok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("job_titles[%q]: %w", title, err)
		}
		if i, seen := index[title]; seen {
			out[i].Count = count
			continue
		}
		index[title] = len(out)
		out = append(out, TitleCount{Title: title, Count: count})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*jt = out
	return nil
}

// MarshalJSON writes the breakdown back as a JSON object in title order.
func (jt JobTitles) MarshalJSON() ([]byte, error) {
	if jt == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, tc := range jt {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(tc.Title)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", tc.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Dataset is the full collection of records in document order.
type Dataset []YearRecord

// Find returns the first record with the given year.
func (d Dataset) Find(year int) (YearRecord, bool) {
	for _, r := range d {
		if r.Year == year {
			return r, true
		}
	}
	return YearRecord{}, false
}

// Years returns the distinct years in the order they first appear.
func (d Dataset) Years() []int {
	seen := make(map[int]bool, len(d))
	var years []int
	for _, r := range d {
		if !seen[r.Year] {
			seen[r.Year] = true
			years = append(years, r.Year)
		}
	}
	return years
}

// Clone returns a shallow copy that can be reordered without touching d.
func (d Dataset) Clone() Dataset {
	if d == nil {
		return nil
	}
	out := make(Dataset, len(d))
	copy(out, d)
	return out
}
