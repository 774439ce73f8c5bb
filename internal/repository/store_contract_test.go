package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
)

func strPtr(s string) *string {
	return &s
}

func createUser(t *testing.T, store *Store, email string, accountType models.AccountType) *models.User {
	t.Helper()
	user := &models.User{Email: email, Password: "secret123", AccountType: accountType}
	require.NoError(t, store.Users.Create(user))
	return user
}

func createProfile(t *testing.T, store *Store, userID, firstName string) *models.Profile {
	t.Helper()
	profile := &models.Profile{UserID: userID, FirstName: firstName, LastName: "Doe", Country: "US", Phone: "123"}
	require.NoError(t, store.Profiles.Create(profile))
	return profile
}

func createGig(t *testing.T, store *Store, freelancerID, title string) *models.Gig {
	t.Helper()
	gig := &models.Gig{FreelancerID: freelancerID, Title: title, Description: "desc", Price: decimal.NewFromInt(50)}
	require.NoError(t, store.Gigs.Create(gig))
	return gig
}

func profileIDs(profiles []models.Profile) []string {
	ids := make([]string, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
	}
	return ids
}

// runStoreContract exercises the behaviour every Store backend must share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) *Store) {
	t.Run("UserLifecycle", func(t *testing.T) {
		store := newStore(t)
		user := &models.User{Email: "a@x.com", Password: "secret123", AccountType: models.AccountTypeFreelancer, WalletAddress: strPtr("ignored")}
		require.NoError(t, store.Users.Create(user))

		assert.NotEmpty(t, user.ID)
		assert.Nil(t, user.WalletAddress)
		assert.False(t, user.CreatedAt.IsZero())

		got, err := store.Users.FindByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", got.Email)
		assert.Equal(t, "secret123", got.Password)
		assert.Equal(t, models.AccountTypeFreelancer, got.AccountType)

		byEmail, err := store.Users.FindByEmail("a@x.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)

		_, err = store.Users.FindByEmail("A@x.com")
		assert.ErrorIs(t, err, ErrNotFound)

		updated, err := store.Users.UpdateWallet(user.ID, "0xabc")
		require.NoError(t, err)
		require.NotNil(t, updated.WalletAddress)
		assert.Equal(t, "0xabc", *updated.WalletAddress)

		reloaded, err := store.Users.FindByID(user.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.WalletAddress)
		assert.Equal(t, "0xabc", *reloaded.WalletAddress)

		_, err = store.Users.UpdateWallet("missing", "0xabc")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("UniqueIDs", func(t *testing.T) {
		store := newStore(t)
		seen := make(map[string]struct{})
		for i := 0; i < 25; i++ {
			gig := createGig(t, store, "f1", "gig")
			_, dup := seen[gig.ID]
			require.False(t, dup, "duplicate id %s", gig.ID)
			seen[gig.ID] = struct{}{}
		}
	})

	t.Run("MissingIDsReturnNotFound", func(t *testing.T) {
		store := newStore(t)
		_, err := store.Users.FindByID("missing")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = store.Profiles.FindByID("missing")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = store.Profiles.FindByUserID("missing")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = store.Gigs.FindByID("missing")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = store.Orders.FindByID("missing")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = store.Connections.FindByID("missing")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = store.Projects.FindByID("missing")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = store.Notifications.FindByID("missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("EmptyFiltersReturnEmptySlices", func(t *testing.T) {
		store := newStore(t)

		gigs, err := store.Gigs.ListByFreelancer("nobody")
		require.NoError(t, err)
		assert.NotNil(t, gigs)
		assert.Empty(t, gigs)

		orders, err := store.Orders.ListByClient("nobody")
		require.NoError(t, err)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)

		orders, err = store.Orders.ListByFreelancer("nobody")
		require.NoError(t, err)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)

		connections, err := store.Connections.ListByClient("nobody")
		require.NoError(t, err)
		assert.NotNil(t, connections)
		assert.Empty(t, connections)

		projects, err := store.Projects.ListByClient("nobody")
		require.NoError(t, err)
		assert.NotNil(t, projects)
		assert.Empty(t, projects)

		notifications, err := store.Notifications.ListByUser("nobody")
		require.NoError(t, err)
		assert.NotNil(t, notifications)
		assert.Empty(t, notifications)

		profiles, err := store.Profiles.ListFreelancers()
		require.NoError(t, err)
		assert.NotNil(t, profiles)
		assert.Empty(t, profiles)
	})

	t.Run("ProfileDefaultsAndUpdate", func(t *testing.T) {
		store := newStore(t)
		user := createUser(t, store, "a@x.com", models.AccountTypeFreelancer)
		profile := &models.Profile{UserID: user.ID, FirstName: "A", Country: "US", Phone: "123", Bio: strPtr("")}
		require.NoError(t, store.Profiles.Create(profile))

		assert.Nil(t, profile.Bio)
		assert.Nil(t, profile.Skills)
		assert.Nil(t, profile.HourlyRate)
		assert.Nil(t, profile.Avatar)
		assert.Nil(t, profile.Portfolio)
		assert.False(t, profile.Verified)

		byUser, err := store.Profiles.FindByUserID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, profile.ID, byUser.ID)

		unchanged, err := store.Profiles.Update(profile.ID, models.ProfilePatch{})
		require.NoError(t, err)
		assert.Equal(t, "A", unchanged.FirstName)
		assert.Nil(t, unchanged.Bio)

		rate := decimal.RequireFromString("42.50")
		updated, err := store.Profiles.Update(profile.ID, models.ProfilePatch{
			Bio:        models.SetTo("Designer"),
			Skills:     models.SetTo([]string{"figma", "go"}),
			HourlyRate: models.SetTo(rate),
			Verified:   func() *bool { v := true; return &v }(),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Bio)
		assert.Equal(t, "Designer", *updated.Bio)
		assert.Equal(t, []string{"figma", "go"}, updated.Skills)
		require.NotNil(t, updated.HourlyRate)
		assert.True(t, rate.Equal(*updated.HourlyRate))
		assert.True(t, updated.Verified)
		assert.Equal(t, "A", updated.FirstName)

		cleared, err := store.Profiles.Update(profile.ID, models.ProfilePatch{Bio: models.SetNull[string]()})
		require.NoError(t, err)
		assert.Nil(t, cleared.Bio)
		assert.Equal(t, []string{"figma", "go"}, cleared.Skills)

		reloaded, err := store.Profiles.FindByID(profile.ID)
		require.NoError(t, err)
		assert.Nil(t, reloaded.Bio)
		assert.True(t, reloaded.Verified)

		_, err = store.Profiles.Update("missing", models.ProfilePatch{FirstName: strPtr("X")})
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = store.Profiles.FindByID("missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ListFreelancersFollowsCurrentUsers", func(t *testing.T) {
		store := newStore(t)
		freelancer := createUser(t, store, "a@x.com", models.AccountTypeFreelancer)
		client := createUser(t, store, "b@x.com", models.AccountTypeClient)
		pa := createProfile(t, store, freelancer.ID, "A")
		pb := createProfile(t, store, client.ID, "B")
		createProfile(t, store, "ghost-user", "Ghost")

		profiles, err := store.Profiles.ListFreelancers()
		require.NoError(t, err)
		ids := profileIDs(profiles)
		assert.Equal(t, []string{pa.ID}, ids)
		assert.NotContains(t, ids, pb.ID)

		late := createUser(t, store, "c@x.com", models.AccountTypeFreelancer)
		pc := createProfile(t, store, late.ID, "C")

		profiles, err = store.Profiles.ListFreelancers()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{pa.ID, pc.ID}, profileIDs(profiles))
	})

	t.Run("GigScenario", func(t *testing.T) {
		store := newStore(t)
		user := createUser(t, store, "a@x.com", models.AccountTypeFreelancer)
		gig := &models.Gig{FreelancerID: user.ID, Title: "Logo", Description: "A logo", Price: decimal.NewFromInt(50), Views: 99}
		require.NoError(t, store.Gigs.Create(gig))

		assert.Equal(t, 0, gig.Views)
		assert.Nil(t, gig.Skills)
		assert.Nil(t, gig.Images)

		gigs, err := store.Gigs.ListByFreelancer(user.ID)
		require.NoError(t, err)
		require.Len(t, gigs, 1)
		assert.Equal(t, gig.ID, gigs[0].ID)
		assert.True(t, decimal.NewFromInt(50).Equal(gigs[0].Price))

		deleted, err := store.Gigs.Delete(gig.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		gigs, err = store.Gigs.ListByFreelancer(user.ID)
		require.NoError(t, err)
		assert.Empty(t, gigs)

		_, err = store.Gigs.FindByID(gig.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("GigUpdateAndDelete", func(t *testing.T) {
		store := newStore(t)
		gig := createGig(t, store, "f1", "Logo")
		other := createGig(t, store, "f2", "Banner")

		unchanged, err := store.Gigs.Update(gig.ID, models.GigPatch{})
		require.NoError(t, err)
		assert.Equal(t, "Logo", unchanged.Title)
		assert.Equal(t, "f1", unchanged.FreelancerID)

		price := decimal.NewFromInt(75)
		updated, err := store.Gigs.Update(gig.ID, models.GigPatch{
			Title:  strPtr("Logo v2"),
			Price:  &price,
			Images: models.SetTo([]string{"a.png"}),
		})
		require.NoError(t, err)
		assert.Equal(t, "Logo v2", updated.Title)
		assert.True(t, price.Equal(updated.Price))
		assert.Equal(t, []string{"a.png"}, updated.Images)
		assert.Equal(t, "desc", updated.Description)

		_, err = store.Gigs.Update("missing", models.GigPatch{Title: strPtr("X")})
		assert.ErrorIs(t, err, ErrNotFound)

		all, err := store.Gigs.List()
		require.NoError(t, err)
		assert.Len(t, all, 2)

		deleted, err := store.Gigs.Delete("missing")
		require.NoError(t, err)
		assert.False(t, deleted)

		all, err = store.Gigs.List()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{gig.ID, other.ID}, []string{all[0].ID, all[1].ID})
	})

	t.Run("OrderLifecycle", func(t *testing.T) {
		store := newStore(t)
		order := &models.Order{GigID: "g1", ClientID: "c1", FreelancerID: "f1", Amount: decimal.NewFromInt(120)}
		require.NoError(t, store.Orders.Create(order))

		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.Equal(t, models.EscrowStatusPending, order.EscrowStatus)
		assert.Nil(t, order.DeliveryDate)
		assert.Nil(t, order.CompletedAt)

		byClient, err := store.Orders.ListByClient("c1")
		require.NoError(t, err)
		require.Len(t, byClient, 1)
		assert.Equal(t, order.ID, byClient[0].ID)

		byFreelancer, err := store.Orders.ListByFreelancer("f1")
		require.NoError(t, err)
		require.Len(t, byFreelancer, 1)

		byFreelancer, err = store.Orders.ListByFreelancer("c1")
		require.NoError(t, err)
		assert.Empty(t, byFreelancer)

		status := models.OrderStatusCompleted
		completed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		updated, err := store.Orders.Update(order.ID, models.OrderPatch{
			Status:      &status,
			CompletedAt: models.SetTo(completed),
		})
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCompleted, updated.Status)
		assert.Equal(t, models.EscrowStatusPending, updated.EscrowStatus)
		require.NotNil(t, updated.CompletedAt)
		assert.True(t, completed.Equal(*updated.CompletedAt))

		reloaded, err := store.Orders.FindByID(order.ID)
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCompleted, reloaded.Status)
		require.NotNil(t, reloaded.CompletedAt)

		_, err = store.Orders.Update("missing", models.OrderPatch{Status: &status})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Connections", func(t *testing.T) {
		store := newStore(t)
		first := &models.Connection{ClientID: "c1", FreelancerID: "f1"}
		require.NoError(t, store.Connections.Create(first))
		require.NoError(t, store.Connections.Create(&models.Connection{ClientID: "c2", FreelancerID: "f1"}))

		assert.NotEmpty(t, first.ID)
		assert.False(t, first.CreatedAt.IsZero())

		got, err := store.Connections.FindByID(first.ID)
		require.NoError(t, err)
		assert.Equal(t, "f1", got.FreelancerID)

		connections, err := store.Connections.ListByClient("c1")
		require.NoError(t, err)
		require.Len(t, connections, 1)
		assert.Equal(t, first.ID, connections[0].ID)
	})

	t.Run("ProjectLifecycle", func(t *testing.T) {
		store := newStore(t)
		project := &models.Project{ClientID: "c1", Title: "Site", Description: "Build a site", Budget: decimal.NewFromInt(1000)}
		require.NoError(t, store.Projects.Create(project))
		require.NoError(t, store.Projects.Create(&models.Project{ClientID: "c2", Title: "App", Description: "Build an app", Budget: decimal.NewFromInt(5000)}))

		assert.Nil(t, project.Skills)
		assert.Nil(t, project.Deadline)

		all, err := store.Projects.List()
		require.NoError(t, err)
		assert.Len(t, all, 2)

		mine, err := store.Projects.ListByClient("c1")
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, project.ID, mine[0].ID)

		deadline := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		updated, err := store.Projects.Update(project.ID, models.ProjectPatch{
			Skills:   models.SetTo([]string{"react"}),
			Deadline: models.SetTo(deadline),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"react"}, updated.Skills)
		require.NotNil(t, updated.Deadline)
		assert.True(t, deadline.Equal(*updated.Deadline))
		assert.Equal(t, "Site", updated.Title)

		cleared, err := store.Projects.Update(project.ID, models.ProjectPatch{Deadline: models.SetNull[time.Time]()})
		require.NoError(t, err)
		assert.Nil(t, cleared.Deadline)

		_, err = store.Projects.Update("missing", models.ProjectPatch{})
		assert.ErrorIs(t, err, ErrNotFound)

		deleted, err := store.Projects.Delete(project.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = store.Projects.FindByID(project.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		deleted, err = store.Projects.Delete(project.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		all, err = store.Projects.List()
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("Notifications", func(t *testing.T) {
		store := newStore(t)
		notification := &models.Notification{UserID: "u1", Message: "New order"}
		require.NoError(t, store.Notifications.Create(notification))
		withEmptyLink := &models.Notification{UserID: "u1", Message: "Ping", Link: strPtr("")}
		require.NoError(t, store.Notifications.Create(withEmptyLink))

		assert.Nil(t, notification.Link)
		assert.False(t, notification.Read)
		assert.Nil(t, withEmptyLink.Link)

		list, err := store.Notifications.ListByUser("u1")
		require.NoError(t, err)
		assert.Len(t, list, 2)

		read, err := store.Notifications.MarkAsRead(notification.ID)
		require.NoError(t, err)
		assert.True(t, read.Read)

		again, err := store.Notifications.MarkAsRead(notification.ID)
		require.NoError(t, err)
		assert.True(t, again.Read)

		reloaded, err := store.Notifications.FindByID(notification.ID)
		require.NoError(t, err)
		assert.True(t, reloaded.Read)

		_, err = store.Notifications.MarkAsRead("missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
