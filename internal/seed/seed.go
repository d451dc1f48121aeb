package seed

import (
	"fmt"
	"log"

	"quill/internal/models"

	"gorm.io/gorm"
)

// Options configures a seeding run.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	SkipBcrypt  bool
	// MaxDays is how far back seeded post timestamps are spread.
	MaxDays int
}

// builtinGroups are always created so the group feeds have stable slugs
// to browse during development.
var builtinGroups = []struct {
	Title       string
	Slug        string
	Description string
}{
	{"Go", "go", "Everything about the Go programming language."},
	{"Databases", "databases", "Storage engines, query planners, and war stories."},
	{"Distributed Systems", "distributed-systems", "Consensus, replication, and things that fail in the night."},
	{"Writing", "writing", "On the craft of writing itself."},
	{"Photography", "photography", "Show your best shots and how you got them."},
	{"Cooking", "cooking", "Recipes, techniques, and kitchen disasters."},
}

// Seeder orchestrates population of the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	opts    Options
}

// NewSeeder creates a Seeder with the given options.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts), opts: opts}
}

// Run executes a full seeding pass: optional cleanup, built-in groups,
// users, posts, comments, and follow edges.
func (s *Seeder) Run() error {
	log.Printf("Seeding database with %d users and %d posts...", s.opts.NumUsers, s.opts.NumPosts)

	if s.opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
	}

	groups, err := s.ensureGroups()
	if err != nil {
		return fmt.Errorf("failed to create groups: %w", err)
	}
	log.Printf("  %d groups available", len(groups))

	users, err := s.createUsers()
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("  %d users created", len(users))

	posts, err := s.createPosts(users, groups)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("  %d posts created", len(posts))

	comments, err := s.createComments(users, posts)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("  %d comments created", comments)

	follows, err := s.createFollowMesh(users)
	if err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}
	log.Printf("  %d follow edges created", follows)

	log.Println("Seeding completed. All seed users have the password: password123")
	return nil
}

// ClearAll removes all seedable rows. Deletion order respects the
// referential dependencies between tables.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []interface{}{
		&models.Comment{},
		&models.Follow{},
		&models.Post{},
		&models.Group{},
		&models.User{},
	} {
		if err := s.db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) ensureGroups() ([]*models.Group, error) {
	groups := make([]*models.Group, 0, len(builtinGroups))
	for _, g := range builtinGroups {
		group := &models.Group{}
		err := s.db.Where("slug = ?", g.Slug).
			Attrs(models.Group{Title: g.Title, Slug: g.Slug, Description: g.Description}).
			FirstOrCreate(group).Error
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (s *Seeder) createUsers() ([]*models.User, error) {
	users := make([]*models.User, 0, s.opts.NumUsers)
	for i := 0; i < s.opts.NumUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) createPosts(users []*models.User, groups []*models.Group) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}
	posts := make([]*models.Post, 0, s.opts.NumPosts)
	for i := 0; i < s.opts.NumPosts; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		// roughly a third of posts stay out of any group
		var group *models.Group
		if s.factory.rng.Intn(3) != 0 && len(groups) > 0 {
			group = groups[s.factory.rng.Intn(len(groups))]
		}
		posts = append(posts, s.factory.BuildPost(author, group))
	}
	if err := s.factory.CreatePostsBatch(posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Seeder) createComments(users []*models.User, posts []*models.Post) (int, error) {
	if len(users) == 0 || len(posts) == 0 {
		return 0, nil
	}
	created := 0
	for _, post := range posts {
		n := s.factory.rng.Intn(5)
		for i := 0; i < n; i++ {
			author := users[s.factory.rng.Intn(len(users))]
			if _, err := s.factory.CreateComment(author, post); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

// createFollowMesh has every user follow a handful of random authors so
// the following feed is non-empty for most seed accounts.
func (s *Seeder) createFollowMesh(users []*models.User) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}
	created := 0
	for _, user := range users {
		n := s.factory.rng.Intn(6) + 1
		for i := 0; i < n; i++ {
			author := users[s.factory.rng.Intn(len(users))]
			if author.ID == user.ID {
				continue
			}
			if err := s.factory.CreateFollow(user, author); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}
