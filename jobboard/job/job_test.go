package job

import (
	"strings"
	"testing"
	"time"

	"github.com/Makanak1/Job-Board-Platform/pkg/kernel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJobTypeIsValid(t *testing.T) {
	for _, jt := range []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote} {
		assert.True(t, jt.IsValid())
	}
	assert.False(t, JobType("freelance").IsValid())
	assert.False(t, JobType("").IsValid())
}

func TestExperienceLevelIsValid(t *testing.T) {
	for _, l := range []ExperienceLevel{ExperienceLevelEntry, ExperienceLevelMid, ExperienceLevelSenior, ExperienceLevelLead} {
		assert.True(t, l.IsValid())
	}
	assert.False(t, ExperienceLevel("principal").IsValid())
}

func TestIsExpired(t *testing.T) {
	j := &Job{}
	assert.False(t, j.IsExpired(), "no deadline never expires")

	past := time.Now().Add(-time.Hour)
	j.ApplicationDeadline = &past
	assert.True(t, j.IsExpired())

	future := time.Now().Add(time.Hour)
	j.ApplicationDeadline = &future
	assert.False(t, j.IsExpired())
}

func TestAcceptsApplications(t *testing.T) {
	past := time.Now().Add(-time.Hour)

	cases := []struct {
		name     string
		job      Job
		accepted bool
	}{
		{"active without deadline", Job{IsActive: true}, true},
		{"inactive", Job{IsActive: false}, false},
		{"active but expired", Job{IsActive: true, ApplicationDeadline: &past}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.accepted, tc.job.AcceptsApplications())
		})
	}
}

func TestOwnedBy(t *testing.T) {
	owner := kernel.NewEmployerID(uuid.NewString())
	j := &Job{EmployerID: owner}

	assert.True(t, j.OwnedBy(owner))
	assert.False(t, j.OwnedBy(kernel.NewEmployerID(uuid.NewString())))
}

func TestGenerateSlug(t *testing.T) {
	slug := string(GenerateSlug("Senior Go Engineer"))

	assert.True(t, strings.HasPrefix(slug, "senior-go-engineer-"), "got %s", slug)
	// Random suffix keeps equal titles distinct.
	assert.NotEqual(t, GenerateSlug("Senior Go Engineer"), GenerateSlug("Senior Go Engineer"))
}

func TestGenerateSlugStripsSpecialCharacters(t *testing.T) {
	slug := string(GenerateSlug("C++ / C# Developer (Remote!)"))

	assert.NotContains(t, slug, "+")
	assert.NotContains(t, slug, "#")
	assert.NotContains(t, slug, "(")
	assert.NotContains(t, slug, " ")
	assert.False(t, strings.Contains(slug, "--"), "got %s", slug)
	assert.True(t, strings.HasPrefix(slug, "c-c-developer-remote-"), "got %s", slug)
}

func TestGenerateSlugEmptyTitle(t *testing.T) {
	slug := string(GenerateSlug("!!!"))

	assert.NotEmpty(t, slug)
	assert.False(t, strings.HasPrefix(slug, "-"), "got %s", slug)
}

func TestApplyUpdate(t *testing.T) {
	j := &Job{
		Title:    "Backend Engineer",
		Location: "Lima",
		IsActive: true,
	}

	newTitle := "Platform Engineer"
	newMin := int64(90000)
	j.ApplyUpdate(UpdateJobRequest{
		Title:     &newTitle,
		SalaryMin: &newMin,
	})

	assert.Equal(t, kernel.JobTitle("Platform Engineer"), j.Title)
	assert.Equal(t, newMin, *j.SalaryMin)
	// Untouched fields keep their values.
	assert.Equal(t, "Lima", j.Location)
}
