package web

import (
	"context"
	"net/http"
	"testing"

	"churchportal/internal/application/projections"
	"churchportal/internal/domain/member"
	"churchportal/internal/domain/treasury"
)

func TestTreasury_AdminOnly(t *testing.T) {
	mux, _, _ := testEnv(t)
	for _, role := range []string{"", "member", "leader"} {
		rec := serve(mux, authRequest("GET", "/api/treasury/summary", "", sessionFor(role)))
		if rec.Code != http.StatusUnauthorized && rec.Code != http.StatusForbidden {
			t.Errorf("role %q = %d, want 401 or 403", role, rec.Code)
		}
	}
}

func TestTreasury_RecordAndSummarize(t *testing.T) {
	mux, _, _ := testEnv(t)

	rec := serve(mux, authRequest("POST", "/api/treasury/contributions",
		`{"member":"Mary Wilson","type":"tithe","amount":50000,"date":"2024-01-13","envelope":"T-101"}`, &adminSession))
	if rec.Code != http.StatusCreated {
		t.Fatalf("record = %d %s", rec.Code, rec.Body)
	}
	rec = serve(mux, authRequest("POST", "/api/treasury/contributions",
		`{"member":"Mary Wilson","type":"gift","amount":100,"date":"2024-01-13"}`, &adminSession))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad type = %d, want 400", rec.Code)
	}

	res := decode[projections.TreasuryResult](t, serve(mux, authRequest("GET", "/api/treasury/summary", "", &adminSession)))
	if res.Summary.TotalTithes != 50000 || len(res.Contributions) != 1 {
		t.Errorf("summary = %+v", res.Summary)
	}

	list := decode[[]treasury.Contribution](t, serve(mux, authRequest("GET", "/api/treasury/contributions", "", &adminSession)))
	if len(list) != 1 || list[0].Envelope != "T-101" {
		t.Errorf("contributions = %+v", list)
	}
}

func TestDirectory_Search(t *testing.T) {
	mux, repo, _ := testEnv(t)
	ctx := context.Background()
	repo.Members.Insert(ctx, member.Member{ID: "m1", Email: "pastor@church.com", FirstName: "John", LastName: "Johnson", Role: "leader", Department: "Pastoral"})
	repo.Members.Insert(ctx, member.Member{ID: "m2", Email: "member@church.com", FirstName: "Mary", LastName: "Wilson", Role: "member", Department: "Health Ministries"})

	if rec := serve(mux, authRequest("GET", "/api/directory?q=health", "", nil)); rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous = %d, want 401", rec.Code)
	}
	res := decode[projections.DirectoryResult](t, serve(mux, authRequest("GET", "/api/directory?q=HEALTH", "", &memberSession)))
	if len(res.Members) != 1 || res.Members[0].ID != "m2" || res.Page.Total != 1 {
		t.Errorf("directory = %+v", res)
	}
}

func TestDashboard_Permissions(t *testing.T) {
	mux, repo, _ := testEnv(t)
	insertEvents(t, repo, sabbathEvents()...)

	res := decode[projections.DashboardResult](t, serve(mux, authRequest("GET", "/api/dashboard", "", &leaderSession)))
	if !res.Permissions.CanManageContent || res.Permissions.CanManageFinance || len(res.Events) != 2 {
		t.Errorf("dashboard = %+v", res)
	}
}
