package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"centraljuan-hris/internal/events"
	"centraljuan-hris/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayrollPayslipRequested renders the requested payslip PDF and
// drops it into outputDir for pickup.
func ConsumePayrollPayslipRequested(
	ctx context.Context,
	reader *kafkago.Reader,
	payrollService payroll.Service,
	outputDir string,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_payslip")
	log.Info("payroll payslip consumer started", zap.String("output_dir", outputDir))

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll payslip consumer stopped")
				return
			}
			log.Error("fetch payroll payslip message failed", zap.Error(err))
			continue
		}

		var event events.PayrollPayslipRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll payslip event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		pdf, err := payrollService.BuildPayslip(ctx, event.CompanyID, event.PayrollID)
		if err != nil {
			log.Error("build payslip failed",
				zap.String("payroll_id", event.PayrollID),
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			continue
		}

		path := filepath.Join(outputDir, fmt.Sprintf("payslip-%s.pdf", event.PayrollID))
		if err := os.WriteFile(path, pdf, 0o644); err != nil {
			log.Error("write payslip file failed",
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll payslip message failed", zap.Error(err))
			continue
		}

		log.Info("payslip generated",
			zap.String("payroll_id", event.PayrollID),
			zap.String("path", path),
		)
	}
}
