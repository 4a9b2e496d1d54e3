package txlens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solLeg(account AccountID, side LegSide, role LegRole, lamports uint64) TxLeg {
	return TxLeg{Account: account, Side: side, Amount: lamportsToMoney(lamports), Role: role}
}

func tokenLeg(account AccountID, side LegSide, role LegRole, token TokenInfo, raw string) TxLeg {
	return TxLeg{Account: account, Side: side, Amount: NewMoneyAmount(token, raw), Role: role}
}

var usdcToken = TokenInfo{Mint: usdcMint, Symbol: "USDC", Name: "USD Coin", Decimals: 6}

func TestValidateLegs_Balanced(t *testing.T) {
	legs := []TxLeg{
		solLeg(ExternalAccount(addrAlice), Debit, RoleSent, 1_000_005_000),
		solLeg(ExternalAccount(addrBob), Credit, RoleReceived, 1_000_000_000),
		solLeg(FeeAccount(), Credit, RoleFee, 5_000),
		tokenLeg(ExternalAccount(addrAlice), Debit, RoleSent, usdcToken, "5000000"),
		tokenLeg(ExternalAccount(addrBob), Credit, RoleReceived, usdcToken, "5000000"),
	}

	report := ValidateLegs(legs)
	assert.True(t, report.IsBalanced)

	require.Contains(t, report.PerToken, "SOL")
	require.Contains(t, report.PerToken, "USDC")
	assert.InDelta(t, 1.000005, report.PerToken["SOL"].Debits, 1e-12)
	assert.InDelta(t, 1.000005, report.PerToken["SOL"].Credits, 1e-12)
}

func TestValidateLegs_ImbalanceReported(t *testing.T) {
	legs := []TxLeg{
		tokenLeg(ExternalAccount(addrAlice), Debit, RoleSent, usdcToken, "5000000"),
	}

	report := ValidateLegs(legs)
	assert.False(t, report.IsBalanced)
	assert.InDelta(t, 5.0, report.PerToken["USDC"].Debits, 1e-12)
	assert.Zero(t, report.PerToken["USDC"].Credits)
}

func TestValidateLegs_Empty(t *testing.T) {
	report := ValidateLegs(nil)
	assert.True(t, report.IsBalanced)
	assert.Empty(t, report.PerToken)
}

func TestValidateLegs_EpsilonConfigurable(t *testing.T) {
	legs := []TxLeg{
		tokenLeg(ExternalAccount(addrAlice), Debit, RoleSent, usdcToken, "1000001"),
		tokenLeg(ExternalAccount(addrBob), Credit, RoleReceived, usdcToken, "1000000"),
	}

	strict := &LegValidator{Epsilon: 1e-9}
	assert.False(t, strict.Validate(legs).IsBalanced)

	loose := &LegValidator{Epsilon: 1e-2}
	assert.True(t, loose.Validate(legs).IsBalanced)
}
