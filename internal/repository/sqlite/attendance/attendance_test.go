package attendance

import (
	"context"
	"testing"

	"erp/backend/internal/entity"
	"erp/backend/internal/pkg/repository/sqlitedb"
	"erp/backend/internal/pkg/repository/sqlitedb/dbtest"

	"github.com/Azure/go-autorest/autorest/date"
)

func mustDate(t *testing.T, s string) date.Date {
	t.Helper()
	d, err := date.ParseDate(s)
	if err != nil {
		t.Fatalf("parsing %s: %v", s, err)
	}
	return d
}

func addWorker(t *testing.T, db *sqlitedb.Database, first, last string) int64 {
	t.Helper()
	res, err := db.ExecContext(context.Background(),
		"INSERT INTO workers (first_name, last_name, role, joining_date) VALUES (?, ?, 'Helper', '2024-01-01')", first, last)
	if err != nil {
		t.Fatalf("adding worker: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("worker id: %v", err)
	}
	return id
}

func countRows(t *testing.T, db *sqlitedb.Database) int {
	t.Helper()
	var n int
	if err := db.QueryRowContext(context.Background(), "SELECT count(*) FROM attendance").Scan(&n); err != nil {
		t.Fatalf("counting attendance: %v", err)
	}
	return n
}

func TestSaveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	repo := NewRepository(db)
	day := mustDate(t, "2024-03-01")

	a := addWorker(t, db, "Anil", "A")
	b := addWorker(t, db, "Bala", "B")

	batch := []SaveRequest{
		{WorkerID: a, Date: day, Status: entity.StatusPresent, PunchInTime: "09:00", PunchOutTime: "17:30"},
		{WorkerID: b, Date: day, Status: entity.StatusAbsent},
	}

	for i := 0; i < 2; i++ {
		if err := repo.Save(ctx, batch); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	if n := countRows(t, db); n != 2 {
		t.Fatalf("rows = %d, want 2", n)
	}

	batch[1] = SaveRequest{WorkerID: b, Date: day, Status: entity.StatusPresent, PunchInTime: "10:15"}
	if err := repo.Save(ctx, batch); err != nil {
		t.Fatalf("resave: %v", err)
	}

	records, err := repo.GetByDate(ctx, day)
	if err != nil {
		t.Fatalf("get by date: %v", err)
	}
	if n := countRows(t, db); n != 2 {
		t.Fatalf("rows after update = %d, want 2", n)
	}
	if got := records[b]; !got.IsPresent() || got.PunchInTime != "10:15" || got.PunchOutTime != "" {
		t.Fatalf("record of b = %+v", got)
	}
	if got := records[a]; got.PunchOutTime != "17:30" {
		t.Fatalf("record of a = %+v", got)
	}

	if err = repo.Save(ctx, []SaveRequest{{WorkerID: a, Date: day, Status: entity.StatusAbsent}}); err != nil {
		t.Fatalf("mark absent: %v", err)
	}
	if records, err = repo.GetByDate(ctx, day); err != nil {
		t.Fatalf("get by date: %v", err)
	}
	if got := records[a]; got != (Record{Status: entity.StatusAbsent}) {
		t.Fatalf("record of a after absent = %+v", got)
	}
	if n := countRows(t, db); n != 2 {
		t.Fatalf("rows after absent = %d, want 2", n)
	}
}

func TestSaveRollsBackWholeBatch(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	repo := NewRepository(db)
	day := mustDate(t, "2024-03-02")

	a := addWorker(t, db, "Anil", "A")

	err := repo.Save(ctx, []SaveRequest{
		{WorkerID: a, Date: day, Status: entity.StatusPresent},
		{WorkerID: a + 100, Date: day, Status: entity.StatusPresent},
	})
	if err == nil {
		t.Fatal("expected foreign key failure")
	}
	if n := countRows(t, db); n != 0 {
		t.Fatalf("rows = %d, want 0 after rollback", n)
	}
}

func TestGetByDateDefaults(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	repo := NewRepository(db)

	a := addWorker(t, db, "Anil", "A")

	records, err := repo.GetByDate(ctx, mustDate(t, "2024-03-03"))
	if err != nil {
		t.Fatalf("get by date: %v", err)
	}
	if _, ok := records[a]; ok {
		t.Fatal("unexpected record")
	}
	if DefaultRecord().IsPresent() {
		t.Fatal("default record must read as absent")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	repo := NewRepository(db)
	day := mustDate(t, "2024-03-04")

	a := addWorker(t, db, "Anil", "A")
	if err := repo.Save(ctx, []SaveRequest{{WorkerID: a, Date: day, Status: entity.StatusPresent}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := repo.Delete(ctx, a, day); err != nil {
			t.Fatalf("delete %d: %v", i, err)
		}
	}
	if n := countRows(t, db); n != 0 {
		t.Fatalf("rows = %d, want 0", n)
	}
}

func TestGetRosterOrderedByName(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	repo := NewRepository(db)

	addWorker(t, db, "Zakir", "K")
	addWorker(t, db, "Anil", "B")
	addWorker(t, db, "Anil", "A")

	roster, err := repo.GetRoster(ctx)
	if err != nil {
		t.Fatalf("roster: %v", err)
	}
	if len(roster) != 3 || roster[0].LastName != "A" || roster[1].LastName != "B" || roster[2].FirstName != "Zakir" {
		t.Fatalf("roster = %+v", roster)
	}
}
