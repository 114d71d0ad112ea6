package chain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mezonai/starnotary/block"
	"github.com/mezonai/starnotary/errors"
	"github.com/mezonai/starnotary/logx"
	"github.com/mezonai/starnotary/monitoring"
)

// ChallengeTag terminates every ownership challenge message.
const ChallengeTag = "starRegistry"

// RequestOwnershipChallenge hands out the message a wallet must sign to prove
// control of address. The message is not stored server-side; its embedded
// timestamp is what the freshness check later re-parses.
func (c *Chain) RequestOwnershipChallenge(address string) (string, error) {
	if err := validAddress(address); err != nil {
		return "", err
	}
	msg := fmt.Sprintf("%s:%d:%s", address, time.Now().Unix(), ChallengeTag)
	monitoring.IncreaseChallengesIssued()
	return msg, nil
}

// SubmitStar runs the ownership-verification-and-append protocol: freshness
// check on the signed challenge, signature verification through the injected
// primitive, then the append transition followed by a full-chain sweep.
func (c *Chain) SubmitStar(address string, message string, signature string, star block.Star) (*block.Block, error) {
	if err := validAddress(address); err != nil {
		monitoring.IncreaseStarsRejected(monitoring.StarRejectedUnknown)
		return nil, err
	}

	issuedAt, err := parseChallengeTimestamp(message)
	if err != nil {
		monitoring.IncreaseStarsRejected(monitoring.StarRejectedMalformedMessage)
		return nil, err
	}

	if elapsed := time.Now().Unix() - issuedAt; elapsed >= int64(c.window/time.Second) {
		monitoring.IncreaseStarsRejected(monitoring.StarRejectedExpiredWindow)
		return nil, errors.NewError(errors.ErrCodeValidationWindowExpired, errors.ErrMsgValidationWindowExpired)
	}

	ok, err := c.verifier.Verify([]byte(message), address, signature)
	if err != nil || !ok {
		if err != nil {
			logx.Warn("CHAIN", "Signature primitive failed: ", err)
		}
		monitoring.IncreaseStarsRejected(monitoring.StarRejectedBadSignature)
		return nil, errors.NewError(errors.ErrCodeSignatureVerificationFailed, errors.ErrMsgSignatureVerificationFailed)
	}

	body, err := block.EncodeStarPayload(address, star)
	if err != nil {
		return nil, errors.NewError(errors.ErrCodeInternal, errors.ErrMsgInternal)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	sealed := c.appendLocked(block.New(body))
	if errs := c.validateLocked(); len(errs) > 0 {
		// Transactional append: the sweep runs with the new block in place, and
		// on failure the block is popped before the lock is released, so no
		// reader ever observes it.
		c.popLocked()
		monitoring.IncreaseStarsRejected(monitoring.StarRejectedChainIntegrity)
		logx.Error("CHAIN", "Rejected star claim, post-append sweep failed: ", strings.Join(errs, "; "))
		return nil, errors.NewChainIntegrityError(errs)
	}
	monitoring.SetBlockHeight(c.height)
	monitoring.IncreaseStarsAccepted()
	logx.Info("CHAIN", fmt.Sprintf("Sealed star claim block %s at height %d for %s", sealed.HashString(), sealed.Height, address))
	return sealed, nil
}

// parseChallengeTimestamp extracts the unix timestamp embedded in a challenge
// message of the form "<address>:<unix>:<tag>".
func parseChallengeTimestamp(message string) (int64, error) {
	parts := strings.Split(message, ":")
	if len(parts) < 3 {
		return 0, errors.NewError(errors.ErrCodeParse, errors.ErrMsgMalformedChallenge)
	}
	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, errors.NewError(errors.ErrCodeParse, errors.ErrMsgMalformedChallenge)
	}
	return ts, nil
}
