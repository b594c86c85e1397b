package handlers_test

import (
	"context"
	"net/http/httptest"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/roamly/roamly-backend/internal/handlers"
	"github.com/roamly/roamly-backend/internal/models"
	"github.com/roamly/roamly-backend/internal/routes"
	"github.com/roamly/roamly-backend/internal/store"
)

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	users []models.User
	err   error // returned by every method when set
}

func (s *fakeUserStore) Insert(_ context.Context, user *models.User) error {
	if s.err != nil {
		return s.err
	}
	user.ID = primitive.NewObjectID()
	s.users = append(s.users, *user)
	return nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeUserStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	byID := make(map[primitive.ObjectID]models.User)
	for _, u := range s.users {
		for _, id := range ids {
			if u.ID == id {
				byID[id] = u
			}
		}
	}
	return byID, nil
}

// fakeDestinationStore is an in-memory DestinationStore.
type fakeDestinationStore struct {
	destinations []models.Destination
	err          error
}

func (s *fakeDestinationStore) Insert(_ context.Context, dest *models.Destination) error {
	if s.err != nil {
		return s.err
	}
	dest.ID = primitive.NewObjectID()
	s.destinations = append(s.destinations, *dest)
	return nil
}

func (s *fakeDestinationStore) FindAll(_ context.Context) ([]models.Destination, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]models.Destination{}, s.destinations...), nil
}

func (s *fakeDestinationStore) FindByName(_ context.Context, name string) ([]models.Destination, error) {
	return s.filter(func(d models.Destination) bool {
		return strings.Contains(strings.ToLower(d.Name), strings.ToLower(name))
	})
}

func (s *fakeDestinationStore) FindByCity(_ context.Context, city string) ([]models.Destination, error) {
	return s.filter(func(d models.Destination) bool {
		return strings.Contains(strings.ToLower(d.City), strings.ToLower(city))
	})
}

func (s *fakeDestinationStore) FindAllByRatingDesc(ctx context.Context) ([]models.Destination, error) {
	all, err := s.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	// Stable keeps ties in insertion order, like the store's natural order.
	sort.SliceStable(all, func(i, j int) bool { return all[i].Rating > all[j].Rating })
	return all, nil
}

func (s *fakeDestinationStore) FindByMinRating(_ context.Context, min float64) ([]models.Destination, error) {
	return s.filter(func(d models.Destination) bool { return d.Rating >= min })
}

func (s *fakeDestinationStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Destination, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, d := range s.destinations {
		if d.ID == id {
			found := d
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeDestinationStore) UpdateFields(_ context.Context, id primitive.ObjectID, update store.UpdateDestination) (*models.Destination, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.destinations {
		if s.destinations[i].ID != id {
			continue
		}
		d := &s.destinations[i]
		if update.Name != nil {
			d.Name = *update.Name
		}
		if update.Description != nil {
			d.Description = *update.Description
		}
		if update.City != nil {
			d.City = *update.City
		}
		if update.Country != nil {
			d.Country = *update.Country
		}
		if update.Rating != nil {
			d.Rating = *update.Rating
		}
		updated := *d
		return &updated, nil
	}
	return nil, store.ErrNotFound
}

func (s *fakeDestinationStore) AppendReview(_ context.Context, id primitive.ObjectID, review models.Review) (*models.Destination, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.destinations {
		if s.destinations[i].ID != id {
			continue
		}
		s.destinations[i].Reviews = append(s.destinations[i].Reviews, review)
		updated := s.destinations[i]
		return &updated, nil
	}
	return nil, store.ErrNotFound
}

func (s *fakeDestinationStore) filter(keep func(models.Destination) bool) ([]models.Destination, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []models.Destination{}
	for _, d := range s.destinations {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

// newTestServer wires the fakes through the real router so tests also
// exercise route registration and precedence.
func newTestServer(users store.UserStore, destinations store.DestinationStore) *httptest.Server {
	log := zerolog.Nop()
	r := chi.NewRouter()
	routes.SetupRoutes(r,
		handlers.NewAuthHandler(users, log),
		handlers.NewDestinationHandler(destinations, users, log),
	)
	return httptest.NewServer(r)
}
