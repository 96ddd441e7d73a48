package validate

import (
	"fmt"

	"github.com/ceyewan/logplan/errorset"
	"github.com/ceyewan/logplan/xerrors"
)

// Warning 非致命的配置问题
type Warning struct {
	Target  string
	Code    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: [%s] %s", w.Target, w.Code, w.Message)
}

// Report 校验结果
//
// Errors 中的问题会阻止解析，Warnings 只需要上报。
type Report struct {
	Errors   []error
	Warnings []Warning
}

// OK 没有致命错误
func (r Report) OK() bool {
	return len(r.Errors) == 0
}

// Err 合并全部致命错误，没有时返回 nil
func (r Report) Err() error {
	return xerrors.Combine(r.Errors...)
}

func (r *Report) addError(target string, err error) {
	if err != nil {
		r.Errors = append(r.Errors, xerrors.Wrap(err, target))
	}
}

func (r *Report) addWarning(target, code, message string) {
	r.Warnings = append(r.Warnings, Warning{Target: target, Code: code, Message: message})
}

func (r *Report) addErrorSetWarnings(target string, warnings []errorset.Warning) {
	for _, w := range warnings {
		r.addWarning(target, w.Code, w.Message)
	}
}

// Merge 追加另一份报告的内容
func (r *Report) Merge(other Report) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}
