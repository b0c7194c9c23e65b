package repositories

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/catalog/internal/shared"
)

// setupTestRepo creates an empty catalog that discards log output
func setupTestRepo(t *testing.T) *CatalogRepository {
	t.Helper()
	return NewCatalogRepository(nil)
}

// seedCatalog creates one user, one album with three songs and returns the user's mobile
func seedCatalog(t *testing.T, repo *CatalogRepository) string {
	t.Helper()

	user := repo.CreateUser("Alice", "555-0100")
	repo.CreateAlbum("Thriller", "Jackson")

	for _, s := range []struct {
		title  string
		length int
	}{
		{"Beat It", 258},
		{"Billie Jean", 294},
		{"Thriller", 258},
	} {
		if _, err := repo.CreateSong(s.title, "Thriller", s.length); err != nil {
			t.Fatalf("failed to create song %s: %v", s.title, err)
		}
	}
	return user.Mobile()
}

func TestCatalogRepository_Create(t *testing.T) {
	t.Run("CreateUser", func(t *testing.T) {
		repo := setupTestRepo(t)
		user := repo.CreateUser("Alice", "555-0100")

		if user.ID() == "" {
			t.Error("user ID should be set after creation")
		}
		if user.Sequence() != 1 {
			t.Errorf("expected sequence 1, got %d", user.Sequence())
		}

		dup := repo.CreateUser("Alice Again", "555-0100")
		if len(repo.Users()) != 2 {
			t.Errorf("duplicate mobiles should be accepted, got %d users", len(repo.Users()))
		}

		got, err := repo.GetUser("555-0100")
		if err != nil {
			t.Fatalf("failed to get user: %v", err)
		}
		if got != user || got == dup {
			t.Error("lookup should resolve to the first user created")
		}
	})

	t.Run("CreateArtist", func(t *testing.T) {
		repo := setupTestRepo(t)
		artist := repo.CreateArtist("Jackson")

		if artist.Likes() != 0 {
			t.Errorf("expected 0 likes, got %d", artist.Likes())
		}
		if len(repo.Artists()) != 1 {
			t.Errorf("expected 1 artist, got %d", len(repo.Artists()))
		}
	})

	t.Run("CreateAlbum uses existing artist", func(t *testing.T) {
		repo := setupTestRepo(t)
		artist := repo.CreateArtist("Jackson")
		album := repo.CreateAlbum("Bad", "Jackson")

		if len(repo.Artists()) != 1 {
			t.Errorf("expected no implicit artist, got %d artists", len(repo.Artists()))
		}
		if albums := artist.Albums(); len(albums) != 1 || albums[0] != album {
			t.Errorf("album should be attached to the existing artist")
		}
	})

	t.Run("CreateAlbum creates missing artist", func(t *testing.T) {
		repo := setupTestRepo(t)
		repo.CreateAlbum("Thriller", "Jackson")

		artist, ok := repo.GetArtist("Jackson")
		if !ok {
			t.Fatal("expected artist to be created implicitly")
		}
		if len(repo.ArtistAlbums("Jackson")) != 1 || artist.Albums()[0].Title() != "Thriller" {
			t.Errorf("expected Thriller under Jackson")
		}
	})

	t.Run("CreateSong", func(t *testing.T) {
		repo := setupTestRepo(t)
		repo.CreateAlbum("Thriller", "Jackson")

		song, err := repo.CreateSong("Beat It", "Thriller", 258)
		if err != nil {
			t.Fatalf("failed to create song: %v", err)
		}
		if song.ArtistName() != "Jackson" {
			t.Errorf("expected artist Jackson, got %s", song.ArtistName())
		}
		if song.Likes() != 0 {
			t.Errorf("expected 0 likes, got %d", song.Likes())
		}

		songs, err := repo.AlbumSongs("Thriller")
		if err != nil {
			t.Fatalf("failed to get album songs: %v", err)
		}
		if len(songs) != 1 || songs[0] != song {
			t.Errorf("song should be attached to its album")
		}
	})

	t.Run("CreateSong without album", func(t *testing.T) {
		repo := setupTestRepo(t)

		song, err := repo.CreateSong("Beat It", "Missing", 258)
		if !errors.Is(err, shared.ErrAlbumNotFound) {
			t.Fatalf("expected ErrAlbumNotFound, got %v", err)
		}
		if !strings.Contains(err.Error(), "album not found") {
			t.Errorf("expected descriptive message, got %q", err.Error())
		}
		if song != nil {
			t.Error("expected nil song")
		}
		if len(repo.Songs()) != 0 {
			t.Error("failed creation should not register the song")
		}
		if _, err := repo.GetSong("Beat It"); !errors.Is(err, shared.ErrSongNotFound) {
			t.Errorf("failed creation should not index the song, got %v", err)
		}
	})
}

func TestCatalogRepository_Playlists(t *testing.T) {
	t.Run("CreatePlaylistOnLength", func(t *testing.T) {
		repo := setupTestRepo(t)
		mobile := seedCatalog(t, repo)

		playlist, err := repo.CreatePlaylistOnLength(mobile, "Short", 258)
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		songs := playlist.Songs()
		if len(songs) != 2 {
			t.Fatalf("expected 2 songs, got %d", len(songs))
		}
		if songs[0].Title() != "Beat It" || songs[1].Title() != "Thriller" {
			t.Errorf("expected songs in creation order, got %s, %s", songs[0].Title(), songs[1].Title())
		}

		listeners := playlist.Listeners()
		if len(listeners) != 1 || listeners[0].Mobile() != mobile {
			t.Errorf("expected creator as sole listener")
		}
	})

	t.Run("playlist songs are a snapshot", func(t *testing.T) {
		repo := setupTestRepo(t)
		mobile := seedCatalog(t, repo)

		if _, err := repo.CreatePlaylistOnLength(mobile, "Short", 258); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		if _, err := repo.CreateSong("Human Nature", "Thriller", 258); err != nil {
			t.Fatalf("failed to create song: %v", err)
		}

		songs, err := repo.PlaylistSongs("Short")
		if err != nil {
			t.Fatalf("failed to get playlist songs: %v", err)
		}
		if len(songs) != 2 {
			t.Errorf("later songs should not join the playlist, got %d songs", len(songs))
		}
	})

	t.Run("CreatePlaylistOnName includes duplicate titles", func(t *testing.T) {
		repo := setupTestRepo(t)
		mobile := seedCatalog(t, repo)
		repo.CreateAlbum("Covers", "Tribute Band")
		if _, err := repo.CreateSong("Beat It", "Covers", 250); err != nil {
			t.Fatalf("failed to create song: %v", err)
		}

		playlist, err := repo.CreatePlaylistOnName(mobile, "Picks", []string{"Beat It", "Billie Jean", "Unknown"})
		if err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		var titles []string
		for _, s := range playlist.Songs() {
			titles = append(titles, s.Title()+"/"+s.ArtistName())
		}
		want := "Beat It/Jackson,Billie Jean/Jackson,Beat It/Tribute Band"
		if got := strings.Join(titles, ","); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("creator history and latest playlist", func(t *testing.T) {
		repo := setupTestRepo(t)
		mobile := seedCatalog(t, repo)

		first, _ := repo.CreatePlaylistOnLength(mobile, "First", 258)
		second, _ := repo.CreatePlaylistOnName(mobile, "Second", []string{"Thriller"})

		latest, err := repo.CreatorPlaylist(mobile)
		if err != nil {
			t.Fatalf("failed to get creator playlist: %v", err)
		}
		if latest != second {
			t.Error("latest playlist should be overwritten by each creation")
		}

		history, err := repo.UserPlaylists(mobile)
		if err != nil {
			t.Fatalf("failed to get user playlists: %v", err)
		}
		if len(history) != 2 || history[0] != first || history[1] != second {
			t.Errorf("expected both playlists in creation order")
		}
	})

	t.Run("unknown creator", func(t *testing.T) {
		repo := setupTestRepo(t)
		seedCatalog(t, repo)

		if _, err := repo.CreatePlaylistOnLength("000", "Nope", 258); !errors.Is(err, shared.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
		if _, err := repo.CreatePlaylistOnName("000", "Nope", []string{"Beat It"}); !errors.Is(err, shared.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
		if len(repo.Playlists()) != 0 {
			t.Error("failed creation should not register a playlist")
		}
	})
}

func TestCatalogRepository_FindPlaylist(t *testing.T) {
	setup := func(t *testing.T) (*CatalogRepository, string) {
		repo := setupTestRepo(t)
		mobile := seedCatalog(t, repo)
		repo.CreateUser("Bob", "555-0101")
		repo.CreateUser("Carol", "555-0102")
		if _, err := repo.CreatePlaylistOnLength(mobile, "Short", 258); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		return repo, mobile
	}

	t.Run("two users join", func(t *testing.T) {
		repo, creator := setup(t)

		for _, mobile := range []string{"555-0101", "555-0102", "555-0101"} {
			if _, err := repo.FindPlaylist(mobile, "Short"); err != nil {
				t.Fatalf("failed to find playlist: %v", err)
			}
		}

		listeners, err := repo.PlaylistListeners("Short")
		if err != nil {
			t.Fatalf("failed to get listeners: %v", err)
		}
		if len(listeners) != 3 {
			t.Fatalf("expected creator plus 2 listeners, got %d", len(listeners))
		}
		if listeners[0].Mobile() != creator {
			t.Error("creator should remain the first listener")
		}
	})

	t.Run("creator does not duplicate", func(t *testing.T) {
		repo, creator := setup(t)

		playlist, err := repo.FindPlaylist(creator, "Short")
		if err != nil {
			t.Fatalf("failed to find playlist: %v", err)
		}
		if len(playlist.Listeners()) != 1 {
			t.Errorf("expected 1 listener, got %d", len(playlist.Listeners()))
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo, creator := setup(t)

		if _, err := repo.FindPlaylist("000", "Short"); !errors.Is(err, shared.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
		if _, err := repo.FindPlaylist(creator, "Long"); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})

	t.Run("GetPlaylist does not enroll", func(t *testing.T) {
		repo, _ := setup(t)

		playlist, err := repo.GetPlaylist("Short")
		if err != nil {
			t.Fatalf("failed to get playlist: %v", err)
		}
		if len(playlist.Listeners()) != 1 {
			t.Errorf("expected only the creator, got %d listeners", len(playlist.Listeners()))
		}
	})
}

func TestCatalogRepository_LikeSong(t *testing.T) {
	t.Run("idempotent per user", func(t *testing.T) {
		repo := setupTestRepo(t)
		mobile := seedCatalog(t, repo)

		for range 2 {
			if _, err := repo.LikeSong(mobile, "Beat It"); err != nil {
				t.Fatalf("failed to like song: %v", err)
			}
		}

		song, _ := repo.GetSong("Beat It")
		if song.Likes() != 1 {
			t.Errorf("expected 1 like, got %d", song.Likes())
		}
		artist, _ := repo.GetArtist("Jackson")
		if artist.Likes() != 1 {
			t.Errorf("expected artist likes 1, got %d", artist.Likes())
		}

		likers, err := repo.SongLikers("Beat It")
		if err != nil {
			t.Fatalf("failed to get likers: %v", err)
		}
		if len(likers) != song.Likes() {
			t.Errorf("likes %d should equal liking users %d", song.Likes(), len(likers))
		}
	})

	t.Run("distinct users accumulate", func(t *testing.T) {
		repo := setupTestRepo(t)
		mobile := seedCatalog(t, repo)
		repo.CreateUser("Bob", "555-0101")

		repo.LikeSong(mobile, "Beat It")
		repo.LikeSong("555-0101", "Beat It")
		repo.LikeSong("555-0101", "Billie Jean")

		song, _ := repo.GetSong("Beat It")
		if song.Likes() != 2 {
			t.Errorf("expected 2 likes, got %d", song.Likes())
		}
		artist, _ := repo.GetArtist("Jackson")
		if artist.Likes() != 3 {
			t.Errorf("expected artist likes 3, got %d", artist.Likes())
		}
	})

	t.Run("not found", func(t *testing.T) {
		repo := setupTestRepo(t)
		mobile := seedCatalog(t, repo)

		if _, err := repo.LikeSong("000", "Beat It"); !errors.Is(err, shared.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
		if _, err := repo.LikeSong(mobile, "Smooth Criminal"); !errors.Is(err, shared.ErrSongNotFound) {
			t.Errorf("expected ErrSongNotFound, got %v", err)
		}
		if _, err := repo.LikeSong(mobile, "Smooth Criminal"); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected generic ErrNotFound match, got %v", err)
		}
	})
}

func TestCatalogRepository_Popularity(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		repo := setupTestRepo(t)

		if _, ok := repo.MostPopularArtist(); ok {
			t.Error("expected no artist")
		}
		if _, ok := repo.MostPopularSong(); ok {
			t.Error("expected no song")
		}
		if p := repo.Popularity(); p.HasArtist || p.HasSong {
			t.Errorf("expected empty popularity, got %+v", p)
		}
	})

	t.Run("ties go to first created", func(t *testing.T) {
		repo := setupTestRepo(t)
		seedCatalog(t, repo)
		repo.CreateArtist("Prince")

		artist, ok := repo.MostPopularArtist()
		if !ok || artist != "Jackson" {
			t.Errorf("expected Jackson, got %q", artist)
		}
		song, ok := repo.MostPopularSong()
		if !ok || song != "Beat It" {
			t.Errorf("expected Beat It, got %q", song)
		}
	})

	t.Run("one like decides", func(t *testing.T) {
		repo := setupTestRepo(t)
		repo.CreateArtist("Prince")
		mobile := seedCatalog(t, repo)

		if _, err := repo.LikeSong(mobile, "Billie Jean"); err != nil {
			t.Fatalf("failed to like song: %v", err)
		}

		if artist, _ := repo.MostPopularArtist(); artist != "Jackson" {
			t.Errorf("expected Jackson, got %q", artist)
		}
		if song, _ := repo.MostPopularSong(); song != "Billie Jean" {
			t.Errorf("expected Billie Jean, got %q", song)
		}

		p := repo.Popularity()
		if p.ArtistLikes != 1 || p.SongLikes != 1 {
			t.Errorf("expected counts of 1, got %+v", p)
		}
	})
}

// TestCatalogRepository_Scenario walks the implicit-artist flow end to end
func TestCatalogRepository_Scenario(t *testing.T) {
	repo := setupTestRepo(t)
	user := repo.CreateUser("Alice", "555-0100")

	repo.CreateAlbum("Thriller", "Jackson")

	song, err := repo.CreateSong("Beat It", "Thriller", 258)
	if err != nil {
		t.Fatalf("failed to create song: %v", err)
	}
	if song.ArtistName() != "Jackson" {
		t.Errorf("expected artist Jackson on song, got %s", song.ArtistName())
	}

	if _, err := repo.LikeSong(user.Mobile(), "Beat It"); err != nil {
		t.Fatalf("failed to like song: %v", err)
	}

	if song.Likes() != 1 {
		t.Errorf("expected song likes 1, got %d", song.Likes())
	}
	artist, ok := repo.GetArtist("Jackson")
	if !ok {
		t.Fatal("expected implicit artist")
	}
	if artist.Likes() != 1 {
		t.Errorf("expected artist likes 1, got %d", artist.Likes())
	}
}

func TestCatalogRepository_Snapshots(t *testing.T) {
	repo := setupTestRepo(t)
	mobile := seedCatalog(t, repo)
	repo.CreateUser("Bob", "555-0101")

	if _, err := repo.CreatePlaylistOnLength(mobile, "Four Eighteen", 258); err != nil {
		t.Fatalf("failed to create playlist: %v", err)
	}
	if _, err := repo.LikeSong("555-0101", "Beat It"); err != nil {
		t.Fatalf("failed to like song: %v", err)
	}

	t.Run("ExportPlaylist", func(t *testing.T) {
		export, err := repo.ExportPlaylist("Four Eighteen")
		if err != nil {
			t.Fatalf("failed to export playlist: %v", err)
		}
		if export.Playlist.Creator != "Alice" || export.Playlist.SongCount != 2 || export.Playlist.TotalLength != 516 {
			t.Errorf("unexpected summary: %+v", export.Playlist)
		}
		if len(export.Tracks) != 2 || export.Tracks[0].Title != "Beat It" || export.Tracks[0].Likes != 1 {
			t.Errorf("unexpected tracks: %+v", export.Tracks)
		}
		if len(export.Listeners) != 1 || export.Listeners[0] != mobile {
			t.Errorf("expected creator as only listener, got %v", export.Listeners)
		}
	})

	t.Run("ExportPlaylist does not enroll", func(t *testing.T) {
		if _, err := repo.ExportPlaylist("Four Eighteen"); err != nil {
			t.Fatalf("failed to export playlist: %v", err)
		}
		listeners, _ := repo.PlaylistListeners("Four Eighteen")
		if len(listeners) != 1 {
			t.Errorf("expected 1 listener, got %d", len(listeners))
		}
	})

	t.Run("ExportPlaylist missing", func(t *testing.T) {
		if _, err := repo.ExportPlaylist("Nope"); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})

	t.Run("PlaylistSummaries", func(t *testing.T) {
		if _, err := repo.CreatePlaylistOnName("555-0101", "Jean", []string{"Billie Jean"}); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		summaries := repo.PlaylistSummaries()
		if len(summaries) != 2 {
			t.Fatalf("expected 2 summaries, got %d", len(summaries))
		}
		if summaries[0].Title != "Four Eighteen" || summaries[1].Title != "Jean" || summaries[1].CreatorMobile != "555-0101" {
			t.Errorf("unexpected summaries: %+v", summaries)
		}
	})

	t.Run("PlaylistExports keeps shared titles", func(t *testing.T) {
		if _, err := repo.CreatePlaylistOnName(mobile, "Jean", []string{"Thriller"}); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		exports := repo.PlaylistExports()
		if len(exports) != 3 {
			t.Fatalf("expected 3 exports, got %d", len(exports))
		}
		for i, export := range exports {
			if export.Playlist.Sequence != i+1 {
				t.Errorf("export %d: expected sequence %d, got %d", i, i+1, export.Playlist.Sequence)
			}
		}
		if exports[1].Tracks[0].Title != "Billie Jean" || exports[2].Tracks[0].Title != "Thriller" {
			t.Errorf("expected both Jean playlists with their own tracks, got %+v and %+v", exports[1].Tracks, exports[2].Tracks)
		}
	})
}

func TestCatalogRepository_Concurrent(t *testing.T) {
	repo := setupTestRepo(t)
	seedCatalog(t, repo)

	mobiles := make([]string, 20)
	for i := range mobiles {
		mobiles[i] = "600-" + strings.Repeat("1", i+1)
		repo.CreateUser("listener", mobiles[i])
	}

	var wg sync.WaitGroup
	for _, mobile := range mobiles {
		wg.Add(1)
		go func(mobile string) {
			defer wg.Done()
			repo.LikeSong(mobile, "Beat It")
			repo.LikeSong(mobile, "Beat It")
			repo.MostPopularSong()
		}(mobile)
	}
	wg.Wait()

	song, _ := repo.GetSong("Beat It")
	if song.Likes() != len(mobiles) {
		t.Errorf("expected %d likes, got %d", len(mobiles), song.Likes())
	}
}

func TestCatalogRepository_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := shared.NewLogger(&buf)
	logger.SetLevel(log.WarnLevel)

	repo := NewCatalogRepository(logger)
	repo.CreateUser("Alice", "555-0100")
	repo.LikeSong("555-0100", "Missing")

	out := buf.String()
	if !strings.Contains(out, "song lookup failed") {
		t.Errorf("expected warning for failed lookup, got %q", out)
	}
	if strings.Contains(out, "created user") {
		t.Errorf("debug output should be filtered at warn level, got %q", out)
	}
}
