package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"churchportal/internal/domain/announcement"
	"churchportal/internal/domain/department"
	"churchportal/internal/domain/event"
	"churchportal/internal/domain/livestream"
	"churchportal/internal/domain/member"
	"churchportal/internal/domain/sermon"
	"churchportal/internal/domain/treasury"
)

type seedStore[T any] interface {
	List(ctx context.Context) ([]T, error)
	Insert(ctx context.Context, v T) error
}

type seedLiveStore interface {
	Stream(ctx context.Context) (livestream.Stream, error)
	UpdateStream(ctx context.Context, fn func(*livestream.Stream) error) (livestream.Stream, error)
	AppendMessage(ctx context.Context, m livestream.ChatMessage) error
	Messages(ctx context.Context, limit int) ([]livestream.ChatMessage, error)
}

type seedTreasuryStore interface {
	ListContributions(ctx context.Context) ([]treasury.Contribution, error)
	AddContribution(ctx context.Context, c treasury.Contribution) error
	SaveBudget(ctx context.Context, b treasury.Budget) error
	AddReport(ctx context.Context, r treasury.Report) error
}

// SeedFixturesDeps holds the stores the demo fixtures are loaded into.
// Live and Treasury are optional.
type SeedFixturesDeps struct {
	Announcements  seedStore[announcement.Announcement]
	Events         seedStore[event.Event]
	Sermons        seedStore[sermon.Sermon]
	Departments    seedStore[department.Department]
	Members        seedStore[member.Member]
	Live           seedLiveStore
	Treasury       seedTreasuryStore
	GenerateID     func() string
	GenerateChatID func() string
	Now            func() time.Time
}

// ExecuteSeedFixtures loads the demo data set.
// Each kind is seeded only while its collection is empty, so reruns change nothing.
// PRE: GenerateID and Now are set
// POST: feeds list fixtures in their published order (newest first); catalogs in catalog order
func ExecuteSeedFixtures(ctx context.Context, deps SeedFixturesDeps) error {
	id := deps.GenerateID

	announcements := fixtureAnnouncements()
	for i := range announcements {
		announcements[i].ID = id()
	}
	events := fixtureEvents()
	for i := range events {
		events[i].ID = id()
		events[i].ApplyDefaults()
	}
	sermons := fixtureSermons()
	for i := range sermons {
		sermons[i].ID = id()
	}
	departments := fixtureDepartments()
	for i := range departments {
		departments[i].ID = id()
	}
	members := fixtureMembers()
	for i := range members {
		members[i].ID = id()
	}

	if err := seedKind(ctx, "announcement", deps.Announcements, announcements, true); err != nil {
		return err
	}
	if err := seedKind(ctx, "event", deps.Events, events, true); err != nil {
		return err
	}
	if err := seedKind(ctx, "sermon", deps.Sermons, sermons, true); err != nil {
		return err
	}
	if err := seedKind(ctx, "department", deps.Departments, departments, false); err != nil {
		return err
	}
	if err := seedKind(ctx, "member", deps.Members, members, false); err != nil {
		return err
	}
	if deps.Live != nil {
		if err := seedLive(ctx, deps); err != nil {
			return err
		}
	}
	if deps.Treasury != nil {
		if err := seedTreasury(ctx, deps); err != nil {
			return err
		}
	}
	return nil
}

// seedKind inserts items when store is empty. Feeds insert at the front, so they are
// inserted in reverse to keep the listed order.
func seedKind[T any](ctx context.Context, kind string, store seedStore[T], items []T, feed bool) error {
	existing, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("seed %s: list: %w", kind, err)
	}
	if len(existing) > 0 {
		return nil
	}

	ordered := items
	if feed {
		ordered = slices.Clone(items)
		slices.Reverse(ordered)
	}
	for _, v := range ordered {
		if err := store.Insert(ctx, v); err != nil {
			return fmt.Errorf("seed %s: insert: %w", kind, err)
		}
	}
	slog.Info("seed_event", "event", "fixtures_seeded", "kind", kind, "count", len(items))
	return nil
}

func seedLive(ctx context.Context, deps SeedFixturesDeps) error {
	msgs, err := deps.Live.Messages(ctx, 0)
	if err != nil {
		return fmt.Errorf("seed live chat: %w", err)
	}
	st, err := deps.Live.Stream(ctx)
	if err != nil {
		return fmt.Errorf("seed live stream: %w", err)
	}
	if len(msgs) > 0 || st.Live {
		return nil
	}

	now := deps.Now()
	if _, err := deps.Live.UpdateStream(ctx, func(s *livestream.Stream) error {
		if err := s.GoLive(livestream.DefaultTitle, now); err != nil {
			return err
		}
		s.Viewers = 245
		return nil
	}); err != nil {
		return fmt.Errorf("seed live stream: %w", err)
	}

	lines := []struct{ user, text string }{
		{"Sister Mary", "Praise the Lord! 🙏"},
		{"Brother John", "Amen to that message!"},
		{"Elder Smith", "Please remember our prayer requests"},
	}
	for i, l := range lines {
		m := livestream.ChatMessage{
			ID:     deps.GenerateChatID(),
			User:   l.user,
			Text:   l.text,
			SentAt: now.Add(time.Duration(i-len(lines)) * time.Minute),
		}
		if err := deps.Live.AppendMessage(ctx, m); err != nil {
			return fmt.Errorf("seed live chat: %w", err)
		}
	}
	slog.Info("seed_event", "event", "fixtures_seeded", "kind", "live_chat", "count", len(lines))
	return nil
}

func seedTreasury(ctx context.Context, deps SeedFixturesDeps) error {
	existing, err := deps.Treasury.ListContributions(ctx)
	if err != nil {
		return fmt.Errorf("seed treasury: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	contributions := []treasury.Contribution{
		{Member: "John Smith", Type: treasury.TypeTithe, Amount: 50000, Date: "2024-01-07", Envelope: "001"},
		{Member: "Sarah Johnson", Type: treasury.TypeOffering, Amount: 10000, Date: "2024-01-07", Envelope: "002"},
		{Member: "Mike Brown", Type: treasury.TypeMission, Amount: 7500, Date: "2024-01-14", Envelope: "003"},
	}
	for i := len(contributions) - 1; i >= 0; i-- {
		c := contributions[i]
		c.ID = deps.GenerateID()
		if err := deps.Treasury.AddContribution(ctx, c); err != nil {
			return fmt.Errorf("seed treasury contribution: %w", err)
		}
	}

	budgets := []treasury.Budget{
		{Department: "Sabbath School", Allocated: 200000, Spent: 120000},
		{Department: "Youth Ministries", Allocated: 300000, Spent: 180000},
		{Department: "Health Ministries", Allocated: 150000, Spent: 90000},
	}
	for _, b := range budgets {
		b.ID = deps.GenerateID()
		if err := deps.Treasury.SaveBudget(ctx, b); err != nil {
			return fmt.Errorf("seed treasury budget: %w", err)
		}
	}

	reports := []treasury.Report{
		{Title: "Monthly Financial Report - December 2023", Date: "2024-01-01", Type: "Monthly"},
		{Title: "Quarterly Report Q4 2023", Date: "2024-01-01", Type: "Quarterly"},
		{Title: "Annual Report 2023", Date: "2024-01-01", Type: "Annual"},
	}
	for i := len(reports) - 1; i >= 0; i-- {
		r := reports[i]
		r.ID = deps.GenerateID()
		if err := deps.Treasury.AddReport(ctx, r); err != nil {
			return fmt.Errorf("seed treasury report: %w", err)
		}
	}
	slog.Info("seed_event", "event", "fixtures_seeded", "kind", "treasury", "contributions", len(contributions), "budgets", len(budgets), "reports", len(reports))
	return nil
}

func fixtureAnnouncements() []announcement.Announcement {
	return []announcement.Announcement{
		{Title: "Sabbath Service Changes", Content: "Service time changed to 10:30 AM starting next week", Author: "Pastor Johnson", CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)},
		{Title: "Community Outreach Event", Content: "Join us for community service this Saturday at 9 AM", Author: "Elder Smith", CreatedAt: time.Date(2024, 1, 14, 15, 30, 0, 0, time.UTC)},
		{Title: "Prayer Meeting", Content: "Wednesday evening prayer meeting at 7 PM in the sanctuary", Author: "Sister Mary", CreatedAt: time.Date(2024, 1, 13, 12, 0, 0, 0, time.UTC)},
	}
}

// fixtureEvents returns the dashboard events followed by the calendar's recurring schedule.
func fixtureEvents() []event.Event {
	return []event.Event{
		{Title: "Youth Camp 2024", Description: "Annual youth camping trip", EventDate: time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC), Location: "Pine Valley Camp", Organizer: "Elder Brown"},
		{Title: "Health Fair", Description: "Free health screenings for the community", EventDate: time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC), Location: "Church Fellowship Hall", Organizer: "Dr. Wilson"},
		{Title: "Evangelistic Series", Description: "Week-long evangelistic meetings", EventDate: time.Date(2024, 3, 1, 19, 0, 0, 0, time.UTC), Location: "Main Sanctuary", Organizer: "Pastor Johnson"},
		{Title: "Sabbath School", Description: "Weekly Bible study", Date: "2024-01-13", Time: "09:30", Type: event.TypeRecurring, RSVP: 45, MaxRSVP: 100},
		{Title: "Divine Service", Description: "Main worship service", Date: "2024-01-13", Time: "11:00", Type: event.TypeRecurring, RSVP: 120, MaxRSVP: 200},
		{Title: "Youth Camp", Description: "Annual youth camping trip", Date: "2024-01-20", Time: "09:00", Type: event.TypeSpecial, RSVP: 25, MaxRSVP: 50},
		{Title: "Prayer Meeting", Description: "Midweek prayer service", Date: "2024-01-17", Time: "19:00", Type: event.TypeRecurring, RSVP: 30, MaxRSVP: 60},
	}
}

func fixtureSermons() []sermon.Sermon {
	return []sermon.Sermon{
		{Title: "The Love of Christ", Speaker: "Pastor Johnson", Scripture: "John 3:16", SermonDate: "2024-01-13", AudioURL: "https://example.com/audio1", VideoURL: "https://example.com/video1"},
		{Title: "Walking by Faith", Speaker: "Elder Smith", Scripture: "2 Corinthians 5:7", SermonDate: "2024-01-06", AudioURL: "https://example.com/audio2"},
		{Title: "Hope in Jesus", Speaker: "Pastor Johnson", Scripture: "Romans 15:13", SermonDate: "2023-12-30", VideoURL: "https://example.com/video3"},
	}
}

func fixtureDepartments() []department.Department {
	return []department.Department{
		{Name: "Sabbath School", Description: "Bible study and spiritual growth programs", MemberCount: 45},
		{Name: "Youth Ministries", Description: "Programs for young people and teenagers", MemberCount: 28},
		{Name: "Health Ministries", Description: "Health education and wellness programs", MemberCount: 22},
		{Name: "Family Ministries", Description: "Programs supporting families and relationships", MemberCount: 35},
	}
}

func fixtureMembers() []member.Member {
	return []member.Member{
		{Email: "admin@church.com", FirstName: "Admin", LastName: "User", Role: "admin", Department: "Administration"},
		{Email: "pastor@church.com", FirstName: "John", LastName: "Johnson", Role: "leader", Department: "Pastoral"},
		{Email: "elder@church.com", FirstName: "Robert", LastName: "Smith", Role: "leader", Department: "Sabbath School"},
		{Email: "member@church.com", FirstName: "Mary", LastName: "Wilson", Role: "member", Department: "Health Ministries"},
	}
}
