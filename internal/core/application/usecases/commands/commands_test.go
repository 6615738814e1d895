package commands_test

import (
	"testing"
	"time"

	"enquiry/internal/core/application/usecases/commands"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/orderline"
	"enquiry/internal/core/domain/model/wizard"
	"enquiry/internal/core/domain/services"
	"enquiry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	tests := []struct {
		name string
		cmd  interface{ Validate() error }
		want error
	}{
		{"create enquiry", commands.CreateEnquiryCommand{}, commands.ErrCreateEnquiryCommandIsNotConstructed},
		{"update enquiry", commands.UpdateEnquiryCommand{}, commands.ErrUpdateEnquiryCommandIsNotConstructed},
		{"add line", commands.AddEnquiryLineCommand{}, commands.ErrAddEnquiryLineCommandIsNotConstructed},
		{"update line", commands.UpdateEnquiryLineCommand{}, commands.ErrUpdateEnquiryLineCommandIsNotConstructed},
		{"remove line", commands.RemoveEnquiryLineCommand{}, commands.ErrRemoveEnquiryLineCommandIsNotConstructed},
		{"confirm", commands.ConfirmEnquiryCommand{}, commands.ErrConfirmEnquiryCommandIsNotConstructed},
		{"additional order", commands.CreateAdditionalOrderCommand{}, commands.ErrCreateAdditionalOrderCommandIsNotConstructed},
		{"cancel", commands.CancelEnquiryCommand{}, commands.ErrCancelEnquiryCommandIsNotConstructed},
		{"sale order", commands.CreateSaleOrderCommand{}, commands.ErrCreateSaleOrderCommandIsNotConstructed},
		{"open sale line wizard", commands.OpenSaleLineWizardCommand{}, commands.ErrOpenSaleLineWizardCommandIsNotConstructed},
		{"apply sale line wizard", commands.ApplySaleLineWizardCommand{}, commands.ErrApplySaleLineWizardCommandIsNotConstructed},
		{"open product add wizard", commands.OpenProductAddWizardCommand{}, commands.ErrOpenProductAddWizardCommandIsNotConstructed},
		{"apply product add wizard", commands.ApplyProductAddWizardCommand{}, commands.ErrApplyProductAddWizardCommandIsNotConstructed},
		{"purge wizards", commands.PurgeExpiredWizardsCommand{}, commands.ErrPurgeExpiredWizardsCommandIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			err := tt.cmd.Validate()

			// Assert
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewCreateEnquiryCommand_WhenPartnerIsMissing_ShouldReturnError(t *testing.T) {
	// Act
	_, err := commands.NewCreateEnquiryCommand(kernel.NewUUID(), commands.CreateEnquiryParams{})

	// Assert
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateEnquiryCommand_ShouldCopyLines(t *testing.T) {
	// Arrange
	productID := kernel.NewUUID()
	lines := []commands.LineRequest{{ProductID: &productID}}

	// Act
	cmd, err := commands.NewCreateEnquiryCommand(kernel.NewUUID(), commands.CreateEnquiryParams{
		PartnerID: kernel.NewUUID(),
		Lines:     lines,
	})
	lines[0] = commands.LineRequest{}

	// Assert
	require.NoError(t, err)
	require.Len(t, cmd.Lines(), 1)
	assert.Equal(t, productID, *cmd.Lines()[0].ProductID)
	assert.Nil(t, cmd.Params().Lines)
}

func TestNewAddEnquiryLineCommand_WhenDisplayTypeIsUnknown_ShouldReturnError(t *testing.T) {
	// Act
	_, err := commands.NewAddEnquiryLineCommand(kernel.NewUUID(), kernel.NewUUID(), commands.LineRequest{
		Input: services.LineInput{DisplayType: orderline.DisplayType("line_banner")},
	})

	// Assert
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdateEnquiryCommand_WhenDateIsZero_ShouldReturnError(t *testing.T) {
	// Arrange
	var zero time.Time

	// Act
	_, err := commands.NewUpdateEnquiryCommand(kernel.NewUUID(), commands.EnquiryHeaderPatch{DateOrder: &zero})

	// Assert
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewOpenSaleLineWizardCommand_ShouldDefaultToCustomerSource(t *testing.T) {
	// Act
	cmd, err := commands.NewOpenSaleLineWizardCommand(kernel.NewUUID(), "", wizard.TargetEnquiry, kernel.NewUUID())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, wizard.BasedOnCustomer, cmd.SourceType())
}

func TestNewOpenSaleLineWizardCommand_WhenModelIsUnknown_ShouldReturnError(t *testing.T) {
	// Act
	_, err := commands.NewOpenSaleLineWizardCommand(kernel.NewUUID(), wizard.BasedOnSale, wizard.TargetModel("res.partner"), kernel.NewUUID())

	// Assert
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewOpenProductAddWizardCommand_ShouldDefaultToSingleSale(t *testing.T) {
	// Act
	cmd, err := commands.NewOpenProductAddWizardCommand(kernel.NewUUID(), commands.ProductAddRequest{ProductID: kernel.NewUUID()})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, wizard.SingleSale, cmd.Request().OrderType)
}

func TestNewPurgeExpiredWizardsCommand_ShouldComputeCutoff(t *testing.T) {
	// Arrange
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// Act
	cmd, err := commands.NewPurgeExpiredWizardsCommand(now, 24*time.Hour)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, now.Add(-24*time.Hour), cmd.Cutoff())
}

func TestSettings_Validate(t *testing.T) {
	// Arrange
	valid := commands.Settings{Currency: kernel.MustNewCurrency("EUR"), Rounding: "round_per_line"}

	// Assert
	require.NoError(t, valid.Validate())
	require.Error(t, commands.Settings{}.Validate())
}
