package api

import "time"

// Boundary normalization. The backend's JSON is a versioned external
// contract whose optional fields come and go; instead of scattering
// nil-checks through the views, every response passes through one of these
// raw types and gets its fallback defaults applied here, in one place.

type rawArtifact struct {
	ID            string     `json:"id"`
	SourceID      string     `json:"source_id"`
	SourceName    *string    `json:"source_name"`
	Title         *string    `json:"title"`
	URL           string     `json:"url"`
	Author        *string    `json:"author"`
	Organization  *string    `json:"organization"`
	Language      *string    `json:"language"`
	Topic         *string    `json:"topic"`
	GeoLocation   *string    `json:"geo_location"`
	MimeType      *string    `json:"mime_type"`
	Summary       *string    `json:"summary"`
	Label         *string    `json:"label"`
	Confidence    *float64   `json:"confidence"`
	HasNormalized *bool      `json:"has_normalized"`
	CreatedAt     time.Time  `json:"created_at"`
	PubDate       *time.Time `json:"pub_date"`
}

type rawArtifactPage struct {
	Items []rawArtifact `json:"items"`
	Total *int          `json:"total"`
}

type rawEvaluation struct {
	ID         string    `json:"id"`
	ArtifactID string    `json:"artifact_id"`
	RubricID   *string   `json:"rubric_id"`
	Label      *string   `json:"label"`
	Confidence *float64  `json:"confidence"`
	Rationale  *string   `json:"rationale"`
	Model      *string   `json:"model"`
	CreatedAt  time.Time `json:"created_at"`
}

type rawSourceSummary struct {
	ID            string     `json:"id"`
	Name          *string    `json:"name"`
	Type          *string    `json:"type"`
	Status        *string    `json:"status"`
	Schedule      *string    `json:"schedule"`
	URL           string     `json:"url"`
	ArtifactCount *int       `json:"artifact_count"`
	Health        *float64   `json:"health"`
	LastRun       *time.Time `json:"last_run"`
	CreatedAt     time.Time  `json:"created_at"`
	Deleted       *bool      `json:"deleted"`
}

type rawSourceHealth struct {
	SourceID      string     `json:"source_id"`
	Score         *float64   `json:"score"`
	ConsecutiveOK *int       `json:"consecutive_ok"`
	LastError     *string    `json:"last_error"`
	LastRun       *time.Time `json:"last_run"`
	NextRun       *time.Time `json:"next_run"`
}

type rawJob struct {
	ID          string     `json:"id"`
	Type        *string    `json:"type"`
	Status      *string    `json:"status"`
	SourceID    *string    `json:"source_id"`
	Error       *string    `json:"error"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

type rawStats struct {
	TotalArtifacts *int           `json:"total_artifacts"`
	ByLabel        map[string]int `json:"by_label"`
	ActiveSources  *int           `json:"active_sources"`
	Ingested24h    *int           `json:"ingested_24h"`
	Evaluated24h   *int           `json:"evaluated_24h"`
}

func normalizeArtifact(r rawArtifact) Artifact {
	a := Artifact{
		ID:            r.ID,
		SourceID:      r.SourceID,
		SourceName:    strOr(r.SourceName, ""),
		Title:         strOr(r.Title, "(untitled)"),
		URL:           r.URL,
		Author:        strOr(r.Author, ""),
		Organization:  strOr(r.Organization, ""),
		Language:      strOr(r.Language, ""),
		Topic:         strOr(r.Topic, ""),
		GeoLocation:   strOr(r.GeoLocation, ""),
		MimeType:      strOr(r.MimeType, "text/html"),
		Summary:       strOr(r.Summary, ""),
		Label:         strOr(r.Label, "not_evaluated"),
		Confidence:    floatOr(r.Confidence, 0),
		HasNormalized: boolOr(r.HasNormalized, false),
		CreatedAt:     r.CreatedAt,
	}
	if r.PubDate != nil {
		a.PubDate = *r.PubDate
	}
	return a
}

func normalizeArtifactPage(r rawArtifactPage) ArtifactPage {
	p := ArtifactPage{
		Items: make([]Artifact, len(r.Items)),
		Total: intOr(r.Total, len(r.Items)),
	}
	for i, ra := range r.Items {
		p.Items[i] = normalizeArtifact(ra)
	}
	return p
}

func normalizeEvaluation(r rawEvaluation) Evaluation {
	return Evaluation{
		ID:         r.ID,
		ArtifactID: r.ArtifactID,
		RubricID:   strOr(r.RubricID, ""),
		Label:      strOr(r.Label, "not_evaluated"),
		Confidence: floatOr(r.Confidence, 0),
		Rationale:  strOr(r.Rationale, ""),
		Model:      strOr(r.Model, ""),
		CreatedAt:  r.CreatedAt,
	}
}

func normalizeSourceSummary(r rawSourceSummary) SourceSummary {
	s := SourceSummary{
		ID:            r.ID,
		Name:          strOr(r.Name, r.ID),
		Type:          strOr(r.Type, "rss"),
		Status:        strOr(r.Status, "active"),
		Schedule:      strOr(r.Schedule, ""),
		URL:           r.URL,
		ArtifactCount: intOr(r.ArtifactCount, 0),
		Health:        floatOr(r.Health, 0),
		CreatedAt:     r.CreatedAt,
		Deleted:       boolOr(r.Deleted, false),
	}
	if r.LastRun != nil {
		s.LastRun = *r.LastRun
	}
	return s
}

func normalizeSourceHealth(r rawSourceHealth) SourceHealth {
	h := SourceHealth{
		SourceID:      r.SourceID,
		Score:         floatOr(r.Score, 0),
		ConsecutiveOK: intOr(r.ConsecutiveOK, 0),
		LastError:     strOr(r.LastError, ""),
	}
	if r.LastRun != nil {
		h.LastRun = *r.LastRun
	}
	if r.NextRun != nil {
		h.NextRun = *r.NextRun
	}
	return h
}

func normalizeJob(r rawJob) Job {
	j := Job{
		ID:       r.ID,
		Type:     strOr(r.Type, ""),
		Status:   strOr(r.Status, "queued"),
		SourceID: strOr(r.SourceID, ""),
		Error:    strOr(r.Error, ""),
	}
	if r.StartedAt != nil {
		j.StartedAt = *r.StartedAt
	}
	if r.CompletedAt != nil {
		j.CompletedAt = *r.CompletedAt
	}
	return j
}

func normalizeStats(r rawStats) DashboardStats {
	s := DashboardStats{
		TotalArtifacts: intOr(r.TotalArtifacts, 0),
		ByLabel:        r.ByLabel,
		ActiveSources:  intOr(r.ActiveSources, 0),
		Ingested24h:    intOr(r.Ingested24h, 0),
		Evaluated24h:   intOr(r.Evaluated24h, 0),
	}
	if s.ByLabel == nil {
		s.ByLabel = map[string]int{}
	}
	return s
}

func strOr(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
