package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kwizera-io/go-momo-etl/internal/common"
	"github.com/kwizera-io/go-momo-etl/internal/common/phone"
	"github.com/kwizera-io/go-momo-etl/internal/models"
	"github.com/kwizera-io/go-momo-etl/internal/repositories"
)

// Body patterns of the mobile money SMS feed. Money mentions are always
// "<figure> RWF" with comma separated thousands; fee and balance are anchored
// by their own wording so the first unanchored money mention is the amount.
var (
	reMoney     = regexp.MustCompile(`([\d,]+(?:\.\d+)?)\s*RWF`)
	reBalance   = regexp.MustCompile(`(?i)new balance\s*:?\s*([\d,]+(?:\.\d+)?)\s*RWF`)
	reFee       = regexp.MustCompile(`(?i)fee\s*(?:was|paid)?\s*:?\s*([\d,]+(?:\.\d+)?)\s*RWF`)
	reReference = regexp.MustCompile(`(?i)(?:financial transaction id|txid|transaction id)\s*:?\s*(\d+)`)
	reDateTime  = regexp.MustCompile(`\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`)

	// counterparty spellings, most specific first
	rePartyPhone = regexp.MustCompile(`(?i)(?:from|to|via agent:?)\s+([A-Za-z][A-Za-z .'-]*?)\s*\((\*{0,12}\d{3,12})\)`)
	rePartyCode  = regexp.MustCompile(`(?i)to\s+([A-Za-z][A-Za-z .'-]*?)\s+(\d{4,8})\b`)
	rePartyBare  = regexp.MustCompile(`(?i)to\s+([A-Za-z][A-Za-z .'-]+?)\s+(?:with|at|has)\b`)

	reIncoming = regexp.MustCompile(`(?i)(?:you have received|received\s+[\d,]+\s*RWF|deposit of\s+[\d,]+(?:\.\d+)?\s*RWF has been added)`)
)

// Normalizer converts one RawRecord into a canonical transaction draft. User
// resolution is its single side effect: sender and receiver identities are
// finalized through an atomic lookup-or-create before anything is loaded.
type Normalizer struct {
	users            repositories.UserRepository
	ownerFullName    string
	ownerPhoneNumber string
}

func NewNormalizer(users repositories.UserRepository, ownerFullName, ownerPhoneNumber string) *Normalizer {
	return &Normalizer{
		users:            users,
		ownerFullName:    ownerFullName,
		ownerPhoneNumber: ownerPhoneNumber,
	}
}

// Normalize returns the transaction draft or a normalize-stage rejection,
// never both.
func (n *Normalizer) Normalize(ctx context.Context, rec models.RawRecord) (*models.TransactionDraft, *models.StageRejection) {
	body := strings.TrimSpace(rec.Body)
	if body == "" {
		return nil, models.NewRejection(models.StageNormalize, rec.Payload, "missing message body", common.ErrMissingBody)
	}

	amount, fee, balance, rej := n.parseMoney(rec)
	if rej != nil {
		return nil, rej
	}

	reference := n.parseReference(body)
	if reference == "" {
		return nil, models.NewRejection(models.StageNormalize, rec.Payload, "missing transaction reference", common.ErrMissingReference)
	}

	transactionDate, err := n.parseTimestamp(rec)
	if err != nil {
		return nil, models.NewRejection(models.StageNormalize, rec.Payload, "unparsable timestamp", err)
	}

	counterpartyName, counterpartyKey, ok := n.parseCounterparty(body)
	if !ok {
		return nil, models.NewRejection(models.StageNormalize, rec.Payload, "missing counterparty identity", common.ErrInvalidPhoneNumber)
	}

	ownerPhone, valid := phone.Normalize(n.ownerPhoneNumber)
	if !valid {
		return nil, models.NewRejection(models.StageNormalize, rec.Payload, "configured owner phone number is invalid", common.ErrInvalidPhoneNumber)
	}

	owner, err := n.users.LookupOrCreate(ctx, &models.CreateUserIn{
		FullName:    n.ownerFullName,
		PhoneNumber: ownerPhone,
	})
	if err != nil {
		return nil, models.NewRejection(models.StageNormalize, rec.Payload, "failed to resolve owner user", err)
	}

	counterparty, err := n.users.LookupOrCreate(ctx, &models.CreateUserIn{
		FullName:    counterpartyName,
		PhoneNumber: counterpartyKey,
	})
	if err != nil {
		return nil, models.NewRejection(models.StageNormalize, rec.Payload, "failed to resolve counterparty user", err)
	}

	if owner.ID == counterparty.ID {
		return nil, models.NewRejection(models.StageNormalize, rec.Payload, "sender and receiver resolve to the same user", common.ErrSameSenderReceiver)
	}

	draft := &models.TransactionDraft{
		Amount:          *amount,
		Fee:             fee,
		Balance:         *balance,
		InitialBalance:  n.initialBalance(*amount, fee, *balance, reIncoming.MatchString(body)),
		TransactionDate: transactionDate,
		Reference:       reference,
		Body:            body,
	}

	if reIncoming.MatchString(body) {
		draft.Sender, draft.Receiver = *counterparty, *owner
	} else {
		draft.Sender, draft.Receiver = *owner, *counterparty
	}

	return draft, nil
}

func (n *Normalizer) parseMoney(rec models.RawRecord) (amount *decimal.Decimal, fee decimal.Decimal, balance *decimal.Decimal, rej *models.StageRejection) {
	body := rec.Body

	balanceLoc := reBalance.FindStringSubmatchIndex(body)
	if balanceLoc == nil {
		rej = models.NewRejection(models.StageNormalize, rec.Payload, "missing balance", common.ErrMissingBalance)
		return
	}
	balance, err := common.NewDecimalFromAmountText(body[balanceLoc[2]:balanceLoc[3]])
	if err != nil || balance == nil {
		rej = models.NewRejection(models.StageNormalize, rec.Payload, "unparsable balance", err)
		return
	}
	if balance.IsNegative() {
		rej = models.NewRejection(models.StageNormalize, rec.Payload, "negative balance", common.ErrNegativeValue)
		return
	}

	feeLoc := reFee.FindStringSubmatchIndex(body)
	if feeLoc != nil {
		parsed, err := common.NewDecimalFromAmountText(body[feeLoc[2]:feeLoc[3]])
		if err != nil || parsed == nil {
			rej = models.NewRejection(models.StageNormalize, rec.Payload, "unparsable fee", err)
			return
		}
		fee = *parsed
	}

	// the amount is the first money mention that is neither the balance nor
	// the fee figure
	for _, loc := range reMoney.FindAllStringSubmatchIndex(body, -1) {
		if within(loc[2], balanceLoc) || within(loc[2], feeLoc) {
			continue
		}
		parsed, err := common.NewDecimalFromAmountText(body[loc[2]:loc[3]])
		if err != nil || parsed == nil {
			rej = models.NewRejection(models.StageNormalize, rec.Payload, "unparsable amount", err)
			return
		}
		amount = parsed
		break
	}
	if amount == nil {
		rej = models.NewRejection(models.StageNormalize, rec.Payload, "missing amount", common.ErrMissingAmount)
		return
	}
	if !amount.IsPositive() {
		rej = models.NewRejection(models.StageNormalize, rec.Payload, "amount must be greater than zero", common.ErrInvalidAmount)
		return
	}

	return amount, fee, balance, nil
}

func (n *Normalizer) parseReference(body string) string {
	if m := reReference.FindStringSubmatch(body); m != nil {
		return m[1]
	}
	return ""
}

// parseTimestamp prefers the timestamp worded inside the body and falls back
// to the epoch-millis date attribute of the backup element. The canonical
// output is timezone naive.
func (n *Normalizer) parseTimestamp(rec models.RawRecord) (time.Time, error) {
	if m := reDateTime.FindString(rec.Body); m != "" {
		return time.Parse(models.TransactionDateLayout, m)
	}

	if rec.Date != "" {
		millis, err := strconv.ParseInt(strings.TrimSpace(rec.Date), 10, 64)
		if err != nil {
			return time.Time{}, common.ErrInvalidFormatDate
		}
		ts := time.UnixMilli(millis).UTC()
		// re-parse through the canonical layout to drop the zone
		return time.Parse(models.TransactionDateLayout, ts.Format(models.TransactionDateLayout))
	}

	return time.Time{}, common.ErrInvalidFormatDate
}

// parseCounterparty extracts the other party's display name and identity key.
// Vendors addressed without any number ("to Airtime with token ...") keep
// their uppercased name as key; it is still a stable identity in this feed.
func (n *Normalizer) parseCounterparty(body string) (name, key string, ok bool) {
	if m := rePartyPhone.FindStringSubmatch(body); m != nil {
		normalized, valid := phone.Normalize(m[2])
		if !valid {
			return "", "", false
		}
		return strings.TrimSpace(m[1]), normalized, true
	}

	if m := rePartyCode.FindStringSubmatch(body); m != nil {
		normalized, valid := phone.Normalize(m[2])
		if valid {
			return strings.TrimSpace(m[1]), normalized, true
		}
	}

	if m := rePartyBare.FindStringSubmatch(body); m != nil {
		name := strings.TrimSpace(m[1])
		return name, strings.ToUpper(strings.ReplaceAll(name, " ", "_")), true
	}

	return "", "", false
}

// initialBalance derives the balance before the transaction from the figures
// the SMS states after it.
func (n *Normalizer) initialBalance(amount, fee decimal.Decimal, balance decimal.Decimal, incoming bool) decimal.Decimal {
	if incoming {
		initial := balance.Sub(amount)
		if initial.IsNegative() {
			return decimal.Zero
		}
		return initial
	}
	return balance.Add(amount).Add(fee)
}

func within(pos int, loc []int) bool {
	return loc != nil && pos >= loc[0] && pos < loc[1]
}
