package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserProfile_States(t *testing.T) {
	profile := &UserProfile{
		Addresses: []*Address{
			{State: "ca"},
			{State: "NY"},
			{State: " CA "},
			nil,
			{State: ""},
			{State: "ny"},
		},
	}

	assert.Equal(t, []string{"CA", "NY"}, profile.States())
	assert.Empty(t, (&UserProfile{}).States())
}

func TestUserProfile_HasMailboxGrant(t *testing.T) {
	assert.False(t, (&UserProfile{}).HasMailboxGrant())
	assert.False(t, (&UserProfile{MailboxConnected: true}).HasMailboxGrant())
	assert.False(t, (&UserProfile{Mailbox: &MailboxGrant{AccessToken: "x"}}).HasMailboxGrant())
	assert.True(t, (&UserProfile{MailboxConnected: true, Mailbox: &MailboxGrant{AccessToken: "x"}}).HasMailboxGrant())
}

func TestUserProfile_Name(t *testing.T) {
	profile := &UserProfile{FirstName: "Ada", LastName: "Lovelace"}
	assert.True(t, profile.HasName())
	assert.Equal(t, "Ada Lovelace", profile.FullName())
	assert.False(t, (&UserProfile{FirstName: "Ada"}).HasName())
}

func TestRecordStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, StatusUnclaimed.CanTransitionTo(StatusClaimed))
	assert.True(t, StatusUnclaimed.CanTransitionTo(StatusReceived))
	assert.True(t, StatusClaimed.CanTransitionTo(StatusReceived))
	assert.False(t, StatusReceived.CanTransitionTo(StatusClaimed))
	assert.False(t, StatusClaimed.CanTransitionTo(StatusClaimed))
	assert.False(t, StatusClaimed.CanTransitionTo("lost"))
}
