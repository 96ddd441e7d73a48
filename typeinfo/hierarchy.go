package typeinfo

import "github.com/ceyewan/logplan/xerrors"

// AssignableFrom 判断 source 的值能否赋给 target
//
// 沿父类链和接口闭包查找，等价于 target 是 source 本身或其祖先。
func AssignableFrom(target, source *Type) bool {
	if target == nil || source == nil {
		return false
	}
	if target == source {
		return true
	}
	if target == Object && !source.IsInterface() && source != Void {
		return true
	}
	seen := make(map[*Type]struct{})
	var walk func(t *Type) bool
	walk = func(t *Type) bool {
		if t == nil {
			return false
		}
		if _, ok := seen[t]; ok {
			return false
		}
		seen[t] = struct{}{}
		if t == target {
			return true
		}
		if walk(t.Super) {
			return true
		}
		for _, i := range t.Interfaces {
			if walk(i) {
				return true
			}
		}
		return false
	}
	return walk(source)
}

// IsSubclassOf 判断 descendant 是否在类链上严格继承自 ancestor
func IsSubclassOf(descendant, ancestor *Type) bool {
	if descendant == nil || ancestor == nil || descendant == ancestor {
		return false
	}
	if ancestor == Object {
		return !descendant.IsInterface() && descendant != Void
	}
	for cur := descendant.Super; cur != nil; cur = cur.Super {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// InheritanceDistance 计算 descendant 沿父类链到 ancestor 的跳数
//
// 相同类型返回 0；不可赋值返回 -1；
// 可赋值但涉及接口时返回 ErrInterfaceDistance，接口关系不在度量范围内。
func InheritanceDistance(ancestor, descendant *Type) (int, error) {
	if ancestor == descendant {
		return 0, nil
	}
	if !AssignableFrom(ancestor, descendant) {
		return -1, nil
	}
	if ancestor.IsInterface() || descendant.IsInterface() {
		return 0, xerrors.Wrapf(ErrInterfaceDistance, "%s -> %s", descendant, ancestor)
	}
	distance := 0
	for cur := descendant; cur != nil; cur = cur.Super {
		if cur == ancestor {
			return distance, nil
		}
		distance++
	}
	// Object 是所有类的隐式根
	if ancestor == Object {
		return distance, nil
	}
	return -1, nil
}

// MostSpecificAncestor 在 candidates 中找出离 subject 最近的类链祖先
//
// 没有候选满足时返回 nil；多个候选距离相同时返回 ErrAmbiguousAncestor。
func MostSpecificAncestor(candidates []*Type, subject *Type) (*Type, error) {
	var (
		best     *Type
		bestDist = -1
		tie      bool
	)
	for _, candidate := range candidates {
		d, err := InheritanceDistance(candidate, subject)
		if err != nil {
			return nil, err
		}
		if d < 0 {
			continue
		}
		switch {
		case best == nil || d < bestDist:
			best, bestDist, tie = candidate, d, false
		case d == bestDist && candidate != best:
			tie = true
		}
	}
	if tie {
		return nil, xerrors.Wrapf(ErrAmbiguousAncestor, "subject %s, candidates %s", subject, formatTypes(candidates))
	}
	return best, nil
}

// ReduceToRoots 把类型列表归约为最小根集合
//
// 重复项和已被其他成员（类链祖先）覆盖的后代会被移除，保留首次出现的顺序。
func ReduceToRoots(types []*Type) []*Type {
	roots := make([]*Type, 0, len(types))
	seen := make(map[*Type]struct{}, len(types))
	for _, t := range types {
		if t == nil {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		covered := false
		for _, other := range types {
			if other != nil && other != t && IsSubclassOf(t, other) {
				covered = true
				break
			}
		}
		if !covered {
			roots = append(roots, t)
		}
	}
	return roots
}
