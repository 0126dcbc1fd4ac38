package commands

import (
	"context"
	"fmt"

	"erp/backend/internal/pkg/repository/sqlitedb"

	"github.com/pkg/errors"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "Create table: description_master",
		Query: `
        CREATE TABLE IF NOT EXISTS description_master (
            id integer primary key autoincrement,
            description text unique not null,
            customer_part_no text,
            sac_code text,
            rate real,
            po_no text
        );`,
	},
	{
		Index:       2,
		Description: "Create table: workers",
		Query: `
        CREATE TABLE IF NOT EXISTS workers (
            id integer primary key autoincrement,
            first_name text not null,
            last_name text,
            photo_path text,
            address text,
            contact_number text,
            previous_experience text,
            salary_amount real,
            salary_frequency text,
            role text not null,
            joining_date text not null,
            id_proof_path text
        );`,
	},
	{
		Index:       3,
		Description: "Create table: overtime",
		Query: `
        CREATE TABLE IF NOT EXISTS overtime (
            id integer primary key autoincrement,
            worker_id integer not null references workers(id) on delete cascade,
            date text not null,
            ot_hours real not null,
            ot_rate real not null,
            ot_amount real not null
        );`,
	},
	{
		Index:       4,
		Description: "Create index: overtime(worker_id, date)",
		Query: `
        CREATE INDEX IF NOT EXISTS overtime_worker_date_idx ON overtime (worker_id, date);`,
	},
	{
		Index:       5,
		Description: "Create table: attendance",
		Query: `
        CREATE TABLE IF NOT EXISTS attendance (
            id integer primary key autoincrement,
            worker_id integer not null references workers(id) on delete cascade,
            date text not null,
            status text not null,
            punch_in_time text,
            punch_out_time text,
            unique (worker_id, date)
        );`,
	},
	{
		Index:       6,
		Description: "Create index: attendance(date)",
		Query: `
        CREATE INDEX IF NOT EXISTS attendance_date_idx ON attendance (date);`,
	},
	{
		Index:       7,
		Description: "Create table: invoice_headers",
		Query: `
        CREATE TABLE IF NOT EXISTS invoice_headers (
            invoice_no text primary key,
            date text not null,
            customer_name text not null,
            total_amount real,
            gst_percentage real,
            payment_method text,
            grn_date_from text,
            grn_date_to text,
            po_number text
        );`,
	},
	{
		Index:       8,
		Description: "Create table: invoice_line_items",
		Query: `
        CREATE TABLE IF NOT EXISTS invoice_line_items (
            id integer primary key autoincrement,
            invoice_no text not null references invoice_headers(invoice_no) on delete cascade,
            line_no integer not null,
            item_description text,
            part_no text,
            hsn_code text,
            quantity real,
            rate real,
            amount real,
            unique (invoice_no, line_no)
        );`,
	},
	{
		Index:       9,
		Description: "Seed description_master when empty",
		Query: `
        INSERT INTO description_master (description, customer_part_no, sac_code, rate, po_no)
        SELECT column1, column2, column3, column4, column5 FROM (VALUES
            ('Paint Coating', 'PC-001', '998873', 100.0, 'PO001/A'),
            ('Powder Coating', 'PC-002', '998874', 120.0, 'PO002/B'),
            ('Surface Treatment', 'ST-001', '998875', 80.0, 'PO003/C'))
        WHERE NOT EXISTS (SELECT 1 FROM description_master);`,
	},
}

// Migrate creates the scheme in the database. Every statement is
// idempotent so it runs on each start.
func Migrate(ctx context.Context, db *sqlitedb.Database) error {
	for _, s := range scheme {
		if _, err := db.ExecContext(ctx, s.Query); err != nil {
			return errors.Wrap(err, fmt.Sprintf("migrate %d: %s", s.Index, s.Description))
		}
	}

	return nil
}
