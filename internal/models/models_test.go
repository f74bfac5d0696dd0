package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRoleAtLeast(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleModerator))
	assert.True(t, RoleModerator.AtLeast(RoleModerator))
	assert.True(t, RolePublisher.AtLeast(RoleModerator))
	assert.False(t, RoleModerator.AtLeast(RoleAdmin))
	assert.False(t, RoleUser.AtLeast(RoleModerator))
	assert.False(t, ProfileRole("ROLE_ROOT").AtLeast(RoleUser))
}

func TestParseLang(t *testing.T) {
	cases := map[string]Lang{"": LangUz, "uz": LangUz, " RU ": LangRu, "en": LangEn}
	for raw, want := range cases {
		got, err := ParseLang(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseLang("de")
	require.Error(t, err)
}

func TestNegotiateLang(t *testing.T) {
	cases := []struct {
		header string
		want   Lang
	}{
		{"en-US,en;q=0.9", LangEn},
		{"de-DE,ru;q=0.8,en;q=0.5", LangRu},
		{"fr, en;q=0", LangRu},
		{"uz-Latn-UZ", LangUz},
		{"*", LangRu},
		{"", LangRu},
		{"en;q=abc", LangRu},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NegotiateLang(tc.header, LangRu), tc.header)
	}
}

func TestReferenceItemNameFallsBack(t *testing.T) {
	item := ReferenceItem{NameUz: "Sport", NameRu: "Спорт"}
	assert.Equal(t, "Спорт", item.Name(LangRu))
	assert.Equal(t, "Sport", item.Name(LangEn))
	assert.Equal(t, "Sport", item.Name(LangUz))
}

func TestArticleStatusValid(t *testing.T) {
	assert.True(t, ArticleStatusPublished.Valid())
	assert.False(t, ArticleStatus("DRAFT").Valid())
}

func TestAttachStoredName(t *testing.T) {
	assert.Equal(t, "2024/06/a1.jpg", Attach{ID: "a1", Path: "2024/06", Extension: "jpg"}.StoredName())
	assert.Equal(t, "2024/06/a1", Attach{ID: "a1", Path: "2024/06"}.StoredName())
}
