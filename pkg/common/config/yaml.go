package config

import (
	"fmt"
	"math"

	"github.com/favbox/httptypes/pkg/common/hlog"
	"gopkg.in/yaml.v2"
)

// ParseYAML 从 YAML 文档中读取限制项，返回可直接传给 NewOptions 的选项。
//
// 文档中缺失的键保持默认值，例如：
//
//	max_field_count: 128
//	max_dynamic_table_size: 8192
func ParseYAML(data []byte) ([]Option, error) {
	var raw struct {
		MaxFieldCount       *int    `yaml:"max_field_count"`
		MaxDynamicTableSize *uint32 `yaml:"max_dynamic_table_size"`
		MaxStringLength     *int    `yaml:"max_string_length"`
		MaxHeaderListSize   *uint32 `yaml:"max_header_list_size"`
	}
	if err := yaml.UnmarshalStrict(data, &raw); err != nil {
		return nil, fmt.Errorf("解析 YAML 配置失败：%w", err)
	}

	var opts []Option
	if raw.MaxFieldCount != nil {
		if n := *raw.MaxFieldCount; n <= 0 || n > math.MaxUint16 {
			return nil, fmt.Errorf("max_field_count 须在 1 到 65535 之间，实际为 %d", n)
		}
		opts = append(opts, WithMaxFieldCount(*raw.MaxFieldCount))
	}
	if raw.MaxDynamicTableSize != nil {
		opts = append(opts, WithMaxDynamicTableSize(*raw.MaxDynamicTableSize))
	}
	if raw.MaxStringLength != nil {
		if *raw.MaxStringLength < 0 {
			return nil, fmt.Errorf("max_string_length 不可为负数，实际为 %d", *raw.MaxStringLength)
		}
		opts = append(opts, WithMaxStringLength(*raw.MaxStringLength))
	}
	if raw.MaxHeaderListSize != nil {
		opts = append(opts, WithMaxHeaderListSize(*raw.MaxHeaderListSize))
	}

	hlog.SystemLogger().Infof("已从 YAML 加载 %d 项字段限制配置", len(opts))
	return opts, nil
}
