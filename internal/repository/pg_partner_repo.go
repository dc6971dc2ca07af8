package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atharvrajmane/channel-partner-form-backend/internal/domain"
)

// sectionColumns maps a section name to the column pair its review is
// stored in. Update targets are resolved through this map only; caller
// input never reaches the SQL text.
var sectionColumns = map[string]struct{ status, reason string }{
	domain.SectionApplicantDetails: {"applicant_details_status", "applicant_details_reason"},
	domain.SectionCurrentAddress:   {"current_address_status", "current_address_reason"},
	domain.SectionPermanentAddress: {"permanent_address_status", "permanent_address_reason"},
	domain.SectionKYCDocuments:     {"kyc_documents_status", "kyc_documents_reason"},
	domain.SectionBankingDetails:   {"banking_details_status", "banking_details_reason"},
}

const partnerCols = `partner_id, partner_ref, full_name, dob, gender,
	national_id_num, tax_id_num, phone_num, email,
	current_address, permanent_address,
	account_holder, account_number, routing_code,
	applicant_details_status, applicant_details_reason,
	current_address_status, current_address_reason,
	permanent_address_status, permanent_address_reason,
	kyc_documents_status, kyc_documents_reason,
	banking_details_status, banking_details_reason,
	final_decision, final_decision_reason, approved_at,
	created_at, updated_at`

type PgPartnerRepo struct{ db *pgxpool.Pool }

func NewPgPartnerRepo(db *pgxpool.Pool) *PgPartnerRepo { return &PgPartnerRepo{db: db} }

func scanPartner(row pgx.Row, p *domain.Partner) error {
	return row.Scan(
		&p.ID, &p.Ref, &p.Name, &p.Dob, &p.Gender,
		&p.NationalID, &p.TaxID, &p.Phone, &p.Email,
		&p.CurrentAddress, &p.PermanentAddress,
		&p.AccountHolder, &p.AccountNumber, &p.RoutingCode,
		&p.ApplicantDetailsReview.Status, &p.ApplicantDetailsReview.Reason,
		&p.CurrentAddressReview.Status, &p.CurrentAddressReview.Reason,
		&p.PermanentAddressReview.Status, &p.PermanentAddressReview.Reason,
		&p.KYCDocumentsReview.Status, &p.KYCDocumentsReview.Reason,
		&p.BankingDetailsReview.Status, &p.BankingDetailsReview.Reason,
		&p.FinalDecision.Status, &p.FinalDecision.Reason, &p.ApprovedAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
}

func (r *PgPartnerRepo) ListPartners(ctx context.Context, search string, limit, offset int) ([]domain.Partner, int32, error) {

	q := `SELECT partner_id, partner_ref, full_name, phone_num, email, final_decision, created_at
	      FROM channel_partner
	      WHERE ($1='' OR full_name ILIKE '%'||$1||'%' OR email ILIKE '%'||$1||'%' OR partner_ref ILIKE '%'||$1||'%')
	      ORDER BY partner_id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, q, strings.TrimSpace(search), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Partner
	for rows.Next() {
		var p domain.Partner
		if err := rows.Scan(&p.ID, &p.Ref, &p.Name, &p.Phone, &p.Email, &p.FinalDecision.Status, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	var total int32
	_ = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM channel_partner WHERE ($1='' OR full_name ILIKE '%'||$1||'%' OR email ILIKE '%'||$1||'%' OR partner_ref ILIKE '%'||$1||'%')`, strings.TrimSpace(search)).Scan(&total)
	return out, total, nil
}

// GetPartner assembles the composite view: the record itself, then its
// documents in insertion order. The two reads are independent; no
// transaction spans them.
func (r *PgPartnerRepo) GetPartner(ctx context.Context, id int32) (*domain.Partner, error) {

	var p domain.Partner
	err := scanPartner(r.db.QueryRow(ctx, `SELECT `+partnerCols+` FROM channel_partner WHERE partner_id=$1`, id), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	docs, err := r.ListDocuments(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Documents = docs
	return &p, nil
}

func (r *PgPartnerRepo) CreatePartner(ctx context.Context, p domain.Partner) (int32, error) {

	var id int32
	if err := r.db.QueryRow(ctx,
		`INSERT INTO channel_partner
		 (partner_ref, full_name, dob, gender, national_id_num, tax_id_num, phone_num, email,
		  current_address, permanent_address, account_holder, account_number, routing_code)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13) RETURNING partner_id`,
		p.Ref, p.Name, p.Dob, p.Gender, p.NationalID, p.TaxID, p.Phone, p.Email,
		p.CurrentAddress, p.PermanentAddress, p.AccountHolder, p.AccountNumber, p.RoutingCode,
	).Scan(&id); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return 0, domain.ErrConflict
		}
		return 0, err
	}
	return id, nil
}

func (r *PgPartnerRepo) DeletePartner(ctx context.Context, id int32) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM channel_partner WHERE partner_id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PgPartnerRepo) UpdateFinalDecision(ctx context.Context, id int32, decision domain.Status, reason string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE channel_partner SET final_decision=$1, final_decision_reason=$2, approved_at=NOW(), updated_at=NOW() WHERE partner_id=$3`,
		string(decision), reason, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PgPartnerRepo) UpdateSectionStatus(ctx context.Context, id int32, section string, status domain.Status, reason string) error {
	cols, ok := sectionColumns[section]
	if !ok {
		return domain.ErrInvalidSection
	}
	q := fmt.Sprintf(`UPDATE channel_partner SET %s=$1, %s=$2, updated_at=NOW() WHERE partner_id=$3`, cols.status, cols.reason)
	tag, err := r.db.Exec(ctx, q, string(status), reason, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PgPartnerRepo) ListDocuments(ctx context.Context, partnerID int32) ([]domain.Document, error) {
	rows, err := r.db.Query(ctx,
		`SELECT doc_id, partner_id, proof_type, doc_type, doc_number, front_url, back_url, created_at
		 FROM partner_document WHERE partner_id=$1 ORDER BY doc_id`, partnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Document
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(&d.ID, &d.PartnerID, &d.ProofType, &d.DocType, &d.DocNumber, &d.FrontURL, &d.BackURL, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *PgPartnerRepo) CreateDocument(ctx context.Context, d domain.Document) (int32, error) {
	var id int32
	if err := r.db.QueryRow(ctx,
		`INSERT INTO partner_document (partner_id, proof_type, doc_type, doc_number, front_url, back_url)
		 VALUES ($1,$2,$3,$4,$5,$6) RETURNING doc_id`,
		d.PartnerID, d.ProofType, d.DocType, d.DocNumber, d.FrontURL, d.BackURL,
	).Scan(&id); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23503" {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return id, nil
}
