package engine

import (
	"fmt"

	"github.com/seaportlabs/harborlord-backend/internal/apperror"
	"github.com/seaportlabs/harborlord-backend/internal/entity"
)

// offerTraining parks a paid exam offer for the space's certificate. Players
// who already hold it get a notice instead.
func (that *Engine) offerTraining(current *entity.Player, space *entity.Space, result *Result) {
	if current.HasCertificate(space.Certificate) {
		result.noticef("%s already holds the %s certificate", current.Name, space.Certificate)
		return
	}

	that.game.Pending = &entity.Pending{
		Kind:     entity.PendingTrainingOffer,
		SpacePos: space.Pos,
		Options: []entity.Option{
			{ID: "buy", Label: fmt.Sprintf("Take the %s training for %d", space.Certificate, space.Price)},
			{ID: "pass", Label: "Skip"},
		},
	}
	result.noticef("Training available: %s certificate for %d", space.Certificate, space.Price)
}

// visitUniversity presents a free exam for one randomly chosen missing
// certificate, or a notice when the player already holds all four.
func (that *Engine) visitUniversity(current *entity.Player, result *Result) {
	var missing []string
	for _, kind := range entity.BaseCertificates {
		if !current.HasCertificate(kind) {
			missing = append(missing, kind)
		}
	}

	if len(missing) == 0 {
		result.noticef("%s already holds every certificate", current.Name)
		return
	}

	certificate := missing[that.rng.Intn(len(missing))]
	result.noticef("The university offers a free %s exam", certificate)
	that.presentExam(certificate, result)
}

// presentExam draws a question for the certificate, shuffles its options and
// parks it as the pending action.
func (that *Engine) presentExam(certificate string, result *Result) {
	questions := entity.TrainingQuestions[certificate]
	question := questions[that.rng.Intn(len(questions))]

	options := make([]string, len(question.Options))
	copy(options, question.Options)
	that.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	that.game.Pending = &entity.Pending{
		Kind: entity.PendingExam,
		Exam: &entity.Exam{
			Certificate: certificate,
			Question:    question.Text,
			Options:     options,
			Correct:     question.Correct,
		},
	}
	result.noticef("Exam: %s", question.Text)
}

// AnswerExam grades the pending exam. A correct answer grants the
// certificate; a wrong one just fails, the fee (if any) is not refunded.
func (that *Engine) AnswerExam(answer string) (*Result, error) {
	if err := that.game.ConfirmPlaying(); err != nil {
		return nil, err
	}

	pending := that.game.Pending
	if pending == nil || pending.Kind != entity.PendingExam {
		return nil, apperror.ErrNoPendingAction
	}

	current := that.game.CurrentPlayer()
	exam := pending.Exam
	that.game.Pending = nil

	result := &Result{}

	if answer == exam.Correct {
		current.GrantCertificate(exam.Certificate)
		result.noticef("%s passed the %s exam!", current.Name, exam.Certificate)
		return result, nil
	}

	result.noticef("%s failed the %s exam", current.Name, exam.Certificate)

	return result, nil
}
