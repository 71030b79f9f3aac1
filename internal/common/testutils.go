package common

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRabbitMQ(t *testing.T) string {
	ctx := context.Background()

	container, err := rabbitmq.Run(ctx, "rabbitmq:3.12.11-management-alpine", rabbitmq.WithAdminUsername("guest"), rabbitmq.WithAdminPassword("guest"))
	if err != nil {
		t.Fatalf("could not start rabbitmq container: %v", err)
	}

	connURL, err := container.AmqpURL(ctx)
	if err != nil {
		t.Fatalf("could not get rabbitmq connection URL: %v", err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Fatalf("could not terminate container: %v", err)
		}
	})

	return connURL
}

// file parameter changes according to the caller filelocation relative to the migrations file and it should be in the format of "file://../../migrations"
func dbMigrate(file, dsn string) (*migrate.Migrate, error) {
	m, err := migrate.New(file, dsn)
	if err != nil {
		return nil, err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return nil, err
	}

	return m, nil
}

func TestDB(filepath string, t *testing.T) *sql.DB {
	ctx := context.Background()

	c, err := postgres.Run(ctx,
		"docker.io/postgres:14.11-bookworm",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(30*time.Second)))
	if err != nil {
		t.Fatalf("could not start postgres container: %v", err)
	}

	connURL, err := c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %s", err)
	}

	m, err := dbMigrate(filepath, connURL)
	if err != nil {
		t.Fatalf("could not run migrations: %v", err)
	}

	db, err := sql.Open("postgres", connURL)
	if err != nil {
		t.Fatalf("could not open database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
		m.Drop()
		c.Terminate(ctx)
	})

	return db
}

// Fixture sizes, kept next to the rows so tests can assert against them.
const (
	SeedArticleCount       = 7
	SeedMitchArticleCount  = 6
	SeedCatsArticleCount   = 1
	SeedArticleOneComments = 4
)

var seedStatements = []string{
	`TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE`,
	`INSERT INTO topics (slug, description) VALUES
		('mitch', 'The man, the Mitch, the legend'),
		('cats', 'Not dogs'),
		('paper', 'what books are made of')`,
	`INSERT INTO users (username, name, avatar_url) VALUES
		('butter_bridge', 'jonny', 'https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg'),
		('icellusedkars', 'sam', 'https://avatars2.githubusercontent.com/u/24604688?s=460&v=4'),
		('rogersop', 'paul', 'https://avatars2.githubusercontent.com/u/24394918?s=400&v=4'),
		('lurker', 'do_nothing', 'https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png')`,
	`INSERT INTO articles (title, topic, author, body, created_at, votes) VALUES
		('Living in the shadow of a great man', 'mitch', 'butter_bridge', 'I find this existence challenging', '2020-07-09 20:11:00+00', 100),
		('Sony Vaio; or, The Laptop', 'mitch', 'icellusedkars', 'Call me Mitchell. Some years ago I decided to buy a laptop.', '2020-10-16 05:03:00+00', 0),
		('Eight pug gifs that remind me of mitch', 'mitch', 'icellusedkars', 'some gifs', '2020-11-03 09:12:00+00', 0),
		('Student SUES Mitch!', 'mitch', 'rogersop', 'We all love Mitch and his wonderful, unique typing style.', '2020-05-06 01:14:00+00', 0),
		('UNCOVERED: catspiracy to bring down democracy', 'cats', 'rogersop', 'Bastet walks amongst us, and the cats are taking arms!', '2020-08-03 13:14:00+00', 0),
		('A', 'mitch', 'icellusedkars', 'Delicious tin of cat food', '2020-10-18 01:00:00+00', 0),
		('Z', 'mitch', 'icellusedkars', 'I was hungry.', '2020-01-07 14:08:00+00', 0)`,
	`INSERT INTO comments (article_id, author, body, votes, created_at) VALUES
		(1, 'butter_bridge', 'Oh, I''ve got compassion running out of my nose, pal!', 16, '2020-04-06 12:17:00+00'),
		(1, 'butter_bridge', 'The beautiful thing about treasure is that it exists.', 14, '2020-10-31 03:03:00+00'),
		(1, 'icellusedkars', 'Replacing the quiet elegance of the dark suit and tie.', 100, '2020-03-01 01:13:00+00'),
		(1, 'icellusedkars', 'I carry a log, yes. Is it funny to you? It is not to me.', -100, '2020-02-23 12:01:00+00'),
		(3, 'icellusedkars', 'Lobster pot', 0, '2020-05-15 20:19:00+00'),
		(3, 'butter_bridge', 'git push origin master', 0, '2020-06-20 07:24:00+00'),
		(5, 'icellusedkars', 'Ambidextrous marsupial', 0, '2020-09-19 23:10:00+00'),
		(5, 'butter_bridge', 'What do you see? I have no idea where this will lead us.', 16, '2020-06-06 09:10:00+00')`,
}

// SeedTestData resets every table and loads the fixture rows with identities starting at 1.
func SeedTestData(t *testing.T, db *sql.DB) {
	t.Helper()

	for _, stmt := range seedStatements {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("could not seed test data: %v", err)
		}
	}
}
