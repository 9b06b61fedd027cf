package dataset

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/internship-recommender/internal/features"
	"github.com/jonathan/internship-recommender/internal/schemas"
	"github.com/jonathan/internship-recommender/internal/types"
)

// Required CSV columns. The remaining columns of the historical artifact
// (CandidateID, Name, Age, Recommendation_Score, Location, Delivery_Mode)
// are optional.
var requiredColumns = []string{"Education", "Skills", "Interests", "Recommended_Career"}

// catalogSchemaPath is the JSON Schema for the internship catalog shape,
// relative to the repository root.
const catalogSchemaPath = "schemas/careers.schema.json"

// Dataset is the in-memory, read-only view of the loaded data: one career
// record per distinct career (first-seen order preserved) and one training
// example per source row.
type Dataset struct {
	Records  []types.CareerRecord
	Examples []types.TrainingExample
}

// Careers returns the distinct career titles in dataset order.
func (d *Dataset) Careers() []string {
	titles := make([]string, len(d.Records))
	for i, rec := range d.Records {
		titles[i] = rec.Title
	}
	return titles
}

// Record returns the record for a career title, matched case-insensitively.
func (d *Dataset) Record(career string) (*types.CareerRecord, bool) {
	for i := range d.Records {
		if strings.EqualFold(d.Records[i].Title, career) {
			return &d.Records[i], true
		}
	}
	return nil, false
}

// Load reads a dataset file, dispatching on extension: .csv is the historical
// training table, .json the internship catalog. An empty dataset is a load
// error: serving with nothing to recommend is a misconfiguration.
func Load(path string) (*Dataset, error) {
	var (
		ds  *Dataset
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		ds, err = loadCSV(path)
	case ".json":
		ds, err = loadJSON(path)
	default:
		return nil, loadErrorf(path, "unsupported dataset format %q (want .csv or .json)", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	if len(ds.Records) == 0 {
		return nil, loadErrorf(path, "dataset contains no records")
	}
	return ds, nil
}

func loadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "cannot open dataset", Cause: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &LoadError{Path: path, Message: "malformed CSV", Cause: err}
	}
	if len(rows) == 0 {
		return nil, loadErrorf(path, "dataset has no header row")
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, loadErrorf(path, "missing required column %q", name)
		}
	}

	field := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	ds := &Dataset{}
	seen := make(map[string]bool)
	for _, row := range rows[1:] {
		career := field(row, "Recommended_Career")
		if career == "" {
			continue
		}

		ex := types.TrainingExample{
			Skills:    field(row, "Skills"),
			Interests: field(row, "Interests"),
			Education: field(row, "Education"),
			Career:    career,
		}
		if raw := field(row, "Age"); raw != "" {
			if age, err := strconv.ParseFloat(raw, 64); err == nil {
				ex.Age = &age
			}
		}
		ds.Examples = append(ds.Examples, ex)

		key := strings.ToLower(career)
		if seen[key] {
			continue
		}
		seen[key] = true

		rec := types.CareerRecord{
			ID:              field(row, "CandidateID"),
			Title:           career,
			Location:        field(row, "Location"),
			EducationLevels: []string{ex.Education},
			Skills:          features.SplitList(ex.Skills),
			Interests:       features.SplitList(ex.Interests),
			DeliveryMode:    field(row, "Delivery_Mode"),
		}
		if raw := field(row, "Recommendation_Score"); raw != "" {
			if score, err := strconv.ParseFloat(raw, 64); err == nil {
				rec.HistoricalScore = score
			}
		}
		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}

func loadJSON(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "cannot open dataset", Cause: err}
	}

	// Schema validation is skipped when the schema file is not resolvable
	// (e.g. an installed binary running outside the repo); the structural
	// checks below still apply.
	if schemaPath := schemas.ResolveSchemaPath(catalogSchemaPath); schemaPath != "" {
		if err := schemas.ValidateFile(schemaPath, data); err != nil {
			return nil, &LoadError{Path: path, Message: "catalog failed schema validation", Cause: err}
		}
	}

	var records []types.CareerRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &LoadError{Path: path, Message: "malformed JSON catalog", Cause: err}
	}

	ds := &Dataset{}
	for i := range records {
		rec := normalizeRecord(records[i])
		if rec.Title == "" {
			return nil, loadErrorf(path, "record %d has no title", i)
		}
		ds.Records = append(ds.Records, rec)
		// Each catalog record doubles as one training example: its own
		// requirements predict its own title.
		ds.Examples = append(ds.Examples, types.TrainingExample{
			Skills:    strings.Join(rec.Skills, "; "),
			Interests: strings.Join(rec.Interests, "; "),
			Education: firstOrEmpty(rec.EducationLevels),
			Career:    rec.Title,
		})
	}

	return ds, nil
}

func normalizeRecord(rec types.CareerRecord) types.CareerRecord {
	rec.Title = strings.TrimSpace(rec.Title)
	rec.Organization = strings.TrimSpace(rec.Organization)
	rec.Location = strings.TrimSpace(rec.Location)
	rec.DeliveryMode = strings.TrimSpace(rec.DeliveryMode)
	rec.EducationLevels = trimAll(rec.EducationLevels)
	rec.Skills = trimAll(rec.Skills)
	rec.Interests = trimAll(rec.Interests)
	return rec
}

func trimAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func firstOrEmpty(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[0]
}
