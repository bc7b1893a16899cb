package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectImageList(t *testing.T) {
	t.Run("decodes the serialized column", func(t *testing.T) {
		p := Project{Images: `["/uploads/a.webp","/uploads/b.webp"]`}
		assert.Equal(t, []string{"/uploads/a.webp", "/uploads/b.webp"}, p.ImageList())
	})

	t.Run("empty and malformed text decode to an empty list", func(t *testing.T) {
		assert.Equal(t, []string{}, (&Project{}).ImageList())
		assert.Equal(t, []string{}, (&Project{Images: "not-json"}).ImageList())
		assert.Equal(t, []string{}, (&Project{Images: "null"}).ImageList())
	})
}

func TestProjectTagList(t *testing.T) {
	tags := `["Sustentable","Paisajismo"]`
	p := Project{Tags: &tags}
	assert.Equal(t, []string{"Sustentable", "Paisajismo"}, p.TagList())

	assert.Equal(t, []string{}, (&Project{}).TagList())

	broken := "{"
	assert.Equal(t, []string{}, (&Project{Tags: &broken}).TagList())
}

func TestProjectTeamList(t *testing.T) {
	team := `[{"role":"Dirección","members":["A. Pérez","B. Gómez"]}]`
	p := Project{Team: &team}

	groups := p.TeamList()
	assert.Len(t, groups, 1)
	assert.Equal(t, "Dirección", groups[0].Role)
	assert.Equal(t, []string{"A. Pérez", "B. Gómez"}, groups[0].Members)

	assert.Equal(t, []TeamGroup{}, (&Project{}).TeamList())
}
