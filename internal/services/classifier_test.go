package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane@example.com
5 years of experience
Skills: Java, SQL
M.S. Computer Science`

func TestResumeClassifier_Predict(t *testing.T) {
	c := newTestClassifier(t)

	r, err := c.Predict(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", r.CandidateName)
	assert.Equal(t, "jane@example.com", r.Email)
	assert.Equal(t, "Master's degree in Computer Science", r.Education)
	assert.Equal(t, 5.0, r.ExperienceYears)
	assert.Equal(t, "java, sql", r.Skills)

	// java pushes the Software Engineer logit to 2: softmax gives sigmoid(2).
	assert.Equal(t, "Software Engineer", r.RecommendedRole)
	assert.Equal(t, 88.08, r.RoleConfidence)
	require.Len(t, r.TopRoles, 2)
	assert.InDelta(t, 1.0, r.TopRoles[0].Confidence+r.TopRoles[1].Confidence, 1e-9)

	// Five years scales to 0.25, so the suitability logit is exactly zero.
	assert.Equal(t, 0.5, r.ProbabilityPass)
	assert.True(t, r.IsSuitable)
	assert.Equal(t, "Review candidate properly for Software Engineer (50.00% confidence).", r.Recommendation)
}

func TestResumeClassifier_EmptyText(t *testing.T) {
	c := newTestClassifier(t)

	r, err := c.Predict(context.Background(), "")
	require.NoError(t, err)

	assert.Empty(t, r.CandidateName)
	assert.Equal(t, "Not specified", r.Education)
	assert.Empty(t, r.SkillList)
	// Both roles score 0.5 and the tie goes to the lexicographically first.
	assert.Equal(t, "Data Scientist", r.RecommendedRole)
	assert.Equal(t, 50.0, r.RoleConfidence)
	assert.False(t, r.IsSuitable)
	assert.Equal(t, "Not a good fit for Data Scientist (88.08% confidence).", r.Recommendation)
}

func TestResumeClassifier_Deterministic(t *testing.T) {
	c := newTestClassifier(t)

	first, err := c.Predict(context.Background(), sampleResume)
	require.NoError(t, err)
	second, err := c.Predict(context.Background(), sampleResume)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestResumeClassifier_ContextCanceled(t *testing.T) {
	c := newTestClassifier(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Predict(ctx, sampleResume)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResumeClassifier_PredictPDFUnreadable(t *testing.T) {
	c := newTestClassifier(t)

	_, err := c.PredictPDF(context.Background(), []byte("definitely not a pdf"))
	assert.ErrorIs(t, err, ErrUnreadablePDF)
}

type stubPDFParser struct {
	PDFParserService
	text string
	err  error
}

func (s stubPDFParser) ExtractTextFromBytes([]byte) (string, error) {
	return s.text, s.err
}

func TestResumeClassifier_PredictPDF(t *testing.T) {
	e := newTestExtractor(t)
	c := NewResumeClassifierService(newTestModel(t, e), e, stubPDFParser{text: sampleResume}, DefaultSuitabilityThreshold, nil)

	r, err := c.PredictPDF(context.Background(), []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "Software Engineer", r.RecommendedRole)

	c = NewResumeClassifierService(newTestModel(t, e), e, stubPDFParser{err: ErrNoText}, DefaultSuitabilityThreshold, nil)
	_, err = c.PredictPDF(context.Background(), []byte("%PDF-1.4"))
	assert.ErrorIs(t, err, ErrNoText)
}
